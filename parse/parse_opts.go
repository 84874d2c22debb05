package parse

type parseOpts struct {
	maxDepth    int
	copyStrings bool
}

type ParseOption func(*parseOpts)

// MaxDepth caps the nesting depth of arrays and inline tables. Parsing
// input nested deeper fails with DepthExceeded instead of exhausting
// the stack. The default is 1000.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// CopyStrings detaches the tree from the source text: every string,
// date, and time value gets owned storage, so the source may be
// released while the tree lives on. Without it, escape-free strings
// alias the source.
func CopyStrings() ParseOption {
	return func(o *parseOpts) { o.copyStrings = true }
}
