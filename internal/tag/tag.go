// Package tag generates simple HTML elements from a name, optional content
// and attributes.
package tag

import (
	"errors"
	"fmt"
	"html"
	"maps"
	"slices"
	"strings"
)

// ErrNoName is returned by FromMap when the map carries no "name" key.
var ErrNoName = errors.New("tag name is required")

// Args holds the resolved arguments of a tag call
type Args struct {
	Name     string
	Content  []string
	Class    string
	HasClass bool
	Attrs    map[string]string
}

// Option configures a tag call
type Option func(*Args)

// Content appends content items. Each item becomes its own element.
func Content(items ...string) Option {
	return func(a *Args) {
		a.Content = append(a.Content, items...)
	}
}

// Class sets the class attribute
func Class(class string) Option {
	return func(a *Args) {
		a.Class = class
		a.HasClass = true
	}
}

// Attr sets a single attribute
func Attr(key, value string) Option {
	return func(a *Args) {
		if a.Attrs == nil {
			a.Attrs = make(map[string]string)
		}
		a.Attrs[key] = value
	}
}

// Attrs sets every attribute in m
func Attrs(m map[string]string) Option {
	return func(a *Args) {
		for k, v := range m {
			Attr(k, v)(a)
		}
	}
}

// Resolve applies opts and returns the bound arguments
func Resolve(name string, opts ...Option) Args {
	a := Args{Name: name}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Tag renders one element per content item, or a single self-closing
// element when there is no content.
func Tag(name string, opts ...Option) string {
	return Resolve(name, opts...).Render()
}

// Render renders the resolved arguments
func (a Args) Render() string {
	attrs := maps.Clone(a.Attrs)
	if a.HasClass {
		if attrs == nil {
			attrs = make(map[string]string, 1)
		}
		attrs["class"] = a.Class
	}

	var attrStr strings.Builder
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		fmt.Fprintf(&attrStr, ` %s="%s"`, k, html.EscapeString(attrs[k]))
	}

	if len(a.Content) == 0 {
		return fmt.Sprintf("<%s%s />", a.Name, attrStr.String())
	}

	elements := make([]string, len(a.Content))
	for i, c := range a.Content {
		elements[i] = fmt.Sprintf("<%s%s>%s</%s>", a.Name, attrStr.String(), c, a.Name)
	}
	return strings.Join(elements, "\n")
}

// FromMap renders a tag from a flat map of keyword arguments. The "name" key
// names the element, "cls" sets the class and every other key is an
// attribute.
func FromMap(m map[string]string) (string, error) {
	name, ok := m["name"]
	if !ok || name == "" {
		return "", ErrNoName
	}

	opts := make([]Option, 0, len(m))
	for k, v := range m {
		switch k {
		case "name":
		case "cls":
			opts = append(opts, Class(v))
		default:
			opts = append(opts, Attr(k, v))
		}
	}
	return Tag(name, opts...), nil
}
