// Package parser builds element trees from YAML tree descriptions:
//
//	tag: html
//	classes: [blue-theme]
//	children:
//	  - tag: body
//	    class: "main wide"
//
// A description only drives the tree construction API; it carries no
// markup of its own.
package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/heathj/elemtree/tree"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyDocument is returned when the input holds no description.
	ErrEmptyDocument = errors.New("empty tree description")
	// ErrMissingTag is returned for a node without a tag name.
	ErrMissingTag = errors.New("missing tag")
)

// Description is the YAML shape of one element.
type Description struct {
	Tag      string        `yaml:"tag"`
	Class    string        `yaml:"class,omitempty"`
	Classes  []string      `yaml:"classes,omitempty"`
	Children []Description `yaml:"children,omitempty"`
}

type Parser struct {
	in     io.Reader
	source string
	log    *logrus.Entry
}

func NewParser(in io.Reader) *Parser {
	return &Parser{
		in:     in,
		source: "<input>",
		log:    logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithSource names the input in errors and log entries.
func (p *Parser) WithSource(name string) *Parser {
	p.source = name
	return p
}

// WithLogger sets the logger used for debug output.
func (p *Parser) WithLogger(l *logrus.Logger) *Parser {
	p.log = logrus.NewEntry(l)
	return p
}

// Start decodes the description and builds the tree it describes.
func (p *Parser) Start() (*tree.Element, error) {
	var d Description
	dec := yaml.NewDecoder(p.in)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(ErrEmptyDocument, p.source)
		}
		return nil, errors.Wrapf(err, "decode %s", p.source)
	}

	root, n, err := Build(d)
	if err != nil {
		return nil, errors.Wrap(err, p.source)
	}
	p.log.WithField("source", p.source).Debugf("[PARSER]: built %d elements", n)
	return root, nil
}

// Build turns a description into a tree and returns the element count.
func Build(d Description) (*tree.Element, int, error) {
	return build(d, "root")
}

func build(d Description, path string) (*tree.Element, int, error) {
	if strings.TrimSpace(d.Tag) == "" {
		return nil, 0, errors.Wrap(ErrMissingTag, path)
	}

	e := tree.Create(d.Tag)
	for _, c := range strings.Fields(d.Class) {
		e.AddClass(c)
	}
	for _, c := range d.Classes {
		e.AddClass(c)
	}

	count := 1
	for i, cd := range d.Children {
		child, n, err := build(cd, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, 0, err
		}
		if _, err := e.AppendChild(child); err != nil {
			return nil, 0, errors.Wrap(err, path)
		}
		count += n
	}
	return e, count, nil
}

// ParseFile reads the description stored at path.
func ParseFile(path string) (*tree.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open tree description")
	}
	defer f.Close()
	return NewParser(f).WithSource(path).Start()
}

// Describe is the inverse of Build.
func Describe(e *tree.Element) Description {
	d := Description{Tag: e.TagName, Classes: e.Classes()}
	for _, c := range e.Children() {
		d.Children = append(d.Children, Describe(c))
	}
	return d
}
