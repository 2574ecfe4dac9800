package scene

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-dimsync"
)

var (
	// ErrInvalidNode is returned for nodes that do not describe exactly one widget.
	ErrInvalidNode = errors.New("invalid node")
	// ErrUnknownGroup is returned when a linked node names a group the
	// document does not declare.
	ErrUnknownGroup = errors.New("unknown link group")
)

// Document is the top level of a scene file.
type Document struct {
	Width  float64              `yaml:"width"`
	Height float64              `yaml:"height"`
	Frames int                  `yaml:"frames"`
	Groups map[string]GroupSpec `yaml:"groups"`
	Root   *Node                `yaml:"root"`
}

// GroupSpec declares a link group.
type GroupSpec struct {
	Axis AxisName `yaml:"axis"`
}

// Node describes one widget. Exactly one of the widget fields must be set.
type Node struct {
	Name string `yaml:"name"`

	Label       *string          `yaml:"label"`
	Box         *BoxNode         `yaml:"box"`
	Row         *StackNode       `yaml:"row"`
	Column      *StackNode       `yaml:"column"`
	Scope       *ScopeNode       `yaml:"scope"`
	Participant *ParticipantNode `yaml:"participant"`
	Linked      *LinkedNode      `yaml:"linked"`
}

// BoxNode describes a Box.
type BoxNode struct {
	Width   Dimension `yaml:"width"`
	Height  Dimension `yaml:"height"`
	Padding float64   `yaml:"padding"`
	Child   *Node     `yaml:"child"`
}

// StackNode describes a Row or Column. It may be written as a plain list of
// children.
type StackNode struct {
	Gap      float64 `yaml:"gap"`
	Children []*Node `yaml:"children"`
}

// ScopeNode describes a SyncScope. A zero domain allocates a fresh one.
type ScopeNode struct {
	Domain uint64 `yaml:"domain"`
	Child  *Node  `yaml:"child"`
}

// ParticipantNode describes a SyncParticipant. KeyFrom may be "index" to key
// on the position within the enclosing row or column.
type ParticipantNode struct {
	Key     *uint64  `yaml:"key"`
	KeyFrom string   `yaml:"key_from"`
	Axis    AxisName `yaml:"axis"`
	Child   *Node    `yaml:"child"`
}

// LinkedNode describes a LinkedParticipant in a declared group.
type LinkedNode struct {
	Group string `yaml:"group"`
	Child *Node  `yaml:"child"`
}

// UnmarshalYAML accepts either a mapping or a bare list of children.
func (s *StackNode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		return value.Decode(&s.Children)
	}
	type plain StackNode
	return value.Decode((*plain)(s))
}

// AxisName is an axis written as "horizontal"/"width" or "vertical"/"height".
type AxisName dimsync.Axis

// Axis returns the dimsync axis.
func (a AxisName) Axis() dimsync.Axis {
	return dimsync.Axis(a)
}

// UnmarshalYAML parses an axis name.
func (a *AxisName) UnmarshalYAML(value *yaml.Node) error {
	switch strings.ToLower(value.Value) {
	case "horizontal", "width", "x":
		*a = AxisName(dimsync.Horizontal)
	case "vertical", "height", "y":
		*a = AxisName(dimsync.Vertical)
	default:
		return fmt.Errorf("line %d: unknown axis %q", value.Line, value.Value)
	}
	return nil
}

// Dimension is a size written as a number, a percentage ("50%") or "auto".
type Dimension struct {
	dimsync.Value
}

// UnmarshalYAML parses a dimension.
func (d *Dimension) UnmarshalYAML(value *yaml.Node) error {
	s := strings.TrimSpace(value.Value)
	switch {
	case s == "" || strings.EqualFold(s, "auto"):
		d.Value = dimsync.Auto()
	case strings.HasSuffix(s, "%"):
		p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return fmt.Errorf("line %d: bad percentage %q: %w", value.Line, s, err)
		}
		d.Value = dimsync.Percent(p)
	default:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("line %d: bad dimension %q: %w", value.Line, s, err)
		}
		d.Value = dimsync.Fixed(n)
	}
	return nil
}

// Parse decodes and validates a document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and parses a document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Validate checks the tree without building it.
func (d *Document) Validate() error {
	if d.Root == nil {
		return fmt.Errorf("root: %w: missing", ErrInvalidNode)
	}
	if d.Width < 0 || d.Height < 0 || d.Frames < 0 {
		return fmt.Errorf("width, height and frames must not be negative")
	}
	return d.validateNode("root", d.Root)
}

func (d *Document) validateNode(path string, n *Node) error {
	if n == nil {
		return fmt.Errorf("%s: %w: empty", path, ErrInvalidNode)
	}
	kinds := n.kinds()
	if len(kinds) != 1 {
		return fmt.Errorf("%s: %w: want exactly one widget kind, got %v", path, ErrInvalidNode, kinds)
	}

	switch {
	case n.Box != nil:
		if n.Box.Child != nil {
			return d.validateNode(path+".box.child", n.Box.Child)
		}
	case n.Row != nil || n.Column != nil:
		s, kind := n.Row, "row"
		if s == nil {
			s, kind = n.Column, "column"
		}
		for i, c := range s.Children {
			if err := d.validateNode(fmt.Sprintf("%s.%s[%d]", path, kind, i), c); err != nil {
				return err
			}
		}
	case n.Scope != nil:
		return d.validateNode(path+".scope.child", n.Scope.Child)
	case n.Participant != nil:
		p := n.Participant
		if (p.Key == nil) == (p.KeyFrom == "") {
			return fmt.Errorf("%s.participant: %w: set exactly one of key and key_from", path, ErrInvalidNode)
		}
		if p.KeyFrom != "" && p.KeyFrom != "index" {
			return fmt.Errorf("%s.participant: %w: unknown key_from %q", path, ErrInvalidNode, p.KeyFrom)
		}
		return d.validateNode(path+".participant.child", p.Child)
	case n.Linked != nil:
		if _, ok := d.Groups[n.Linked.Group]; !ok {
			return fmt.Errorf("%s.linked: %w: %q", path, ErrUnknownGroup, n.Linked.Group)
		}
		return d.validateNode(path+".linked.child", n.Linked.Child)
	}
	return nil
}

func (n *Node) kinds() []string {
	var out []string
	add := func(set bool, name string) {
		if set {
			out = append(out, name)
		}
	}
	add(n.Label != nil, "label")
	add(n.Box != nil, "box")
	add(n.Row != nil, "row")
	add(n.Column != nil, "column")
	add(n.Scope != nil, "scope")
	add(n.Participant != nil, "participant")
	add(n.Linked != nil, "linked")
	return out
}

// Kind returns the widget kind the node describes.
func (n *Node) Kind() string {
	if k := n.kinds(); len(k) == 1 {
		return k[0]
	}
	return ""
}
