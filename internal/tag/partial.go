package tag

import "slices"

// Partial is a tag call with its name and some options fixed in advance
type Partial struct {
	Name    string
	Options []Option
}

// Bind fixes name and opts for later calls
func Bind(name string, opts ...Option) Partial {
	return Partial{Name: name, Options: slices.Clone(opts)}
}

// Resolve returns the arguments bound so far, plus opts
func (p Partial) Resolve(opts ...Option) Args {
	return Resolve(p.Name, append(slices.Clone(p.Options), opts...)...)
}

// Call renders the tag with the bound options followed by opts
func (p Partial) Call(opts ...Option) string {
	return p.Resolve(opts...).Render()
}
