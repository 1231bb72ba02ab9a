package formatted

import "github.com/next-trace/scg-catchall/contract"

// DefaultText is the text carried by Default.
const DefaultText = "Default FormattedError"

// Error holds the debug rendering of an absorbed value.
//
// The text is fixed at construction. The zero value carries an empty text and is
// not the same as Default.
type Error struct {
	text string
}

// compile-time guarantee that Error implements contract.Shape
var _ contract.Shape = Error{}

func (e Error) Error() string     { return e.text }
func (e Error) Text() string      { return e.text }
func (Error) Kind() contract.Kind { return contract.KindFormatted }

// New creates an Error carrying text as is.
func New(text string) Error { return Error{text: text} }

// Default returns an Error for when no specific error information exists yet.
func Default() Error { return New(DefaultText) }
