package nucbit

import "fmt"

// Kind identifies one member of the closed error taxonomy a codec or bit
// kernel operation can return. Kind values are cheap to compare and never
// nest.
type Kind int

const (
	// KindInvalidBase means a byte outside {A,a,C,c,G,g,T,t} was found.
	KindInvalidBase Kind = iota
	// KindSequenceTooLong means a single-word pack saw more than 32 bases.
	KindSequenceTooLong
	// KindInvalidLength means a requested base count was inconsistent with
	// the supplied word count, or exceeded 32 for a single-word op.
	KindInvalidLength
	// KindIndexOutOfBounds means a split index fell outside [0, length].
	KindIndexOutOfBounds
	// KindInvalidRange means a half-open slice request had start > end or
	// end > length. Reserved for the higher-level wrapper type; the core
	// codec never returns it directly.
	KindInvalidRange
	// KindUnsupported means an accelerated variant was requested but the
	// running CPU lacks the required features.
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindInvalidBase:
		return "invalid base"
	case KindSequenceTooLong:
		return "sequence too long"
	case KindInvalidLength:
		return "invalid length"
	case KindIndexOutOfBounds:
		return "index out of bounds"
	case KindInvalidRange:
		return "invalid range"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Error is the single error type every exported nucbit operation returns.
// It carries a Kind plus the offending value(s), so callers can branch on
// Kind without string matching and compare errors with errors.Is against
// the ErrKind sentinels below.
type Error struct {
	Kind Kind

	// Byte is set for KindInvalidBase: the first offending byte.
	Byte byte

	// Len is set for KindSequenceTooLong and KindInvalidLength.
	Len int

	// Index and Length are set for KindIndexOutOfBounds (inclusive upper
	// bound) and KindInvalidRange (exclusive upper bound via End).
	Index, Length int
	Start, End    int
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidBase:
		return fmt.Sprintf("nucbit: invalid base %q (0x%02x)", rune(e.Byte), e.Byte)
	case KindSequenceTooLong:
		return fmt.Sprintf("nucbit: sequence length %d exceeds maximum of 32", e.Len)
	case KindInvalidLength:
		return fmt.Sprintf("nucbit: invalid length %d", e.Len)
	case KindIndexOutOfBounds:
		return fmt.Sprintf("nucbit: index %d out of bounds for length %d", e.Index, e.Length)
	case KindInvalidRange:
		return fmt.Sprintf("nucbit: invalid range [%d:%d) for length %d", e.Start, e.End, e.Length)
	case KindUnsupported:
		return "nucbit: accelerated kernel unsupported on this CPU"
	default:
		return "nucbit: error"
	}
}

// Is reports whether target is one of the package-level ErrKind sentinels
// matching e.Kind, so callers can write errors.Is(err, nucbit.ErrInvalidBase)
// without importing the Error struct fields.
func (e *Error) Is(target error) bool {
	sentinel, ok := target.(kindSentinel)
	return ok && sentinel.kind == e.Kind
}

type kindSentinel struct{ kind Kind }

func (s kindSentinel) Error() string { return s.kind.String() }

// Sentinel values usable with errors.Is. They are not returned directly;
// *Error values are, and *Error.Is matches the sentinel by Kind.
var (
	ErrInvalidBase      error = kindSentinel{KindInvalidBase}
	ErrSequenceTooLong  error = kindSentinel{KindSequenceTooLong}
	ErrInvalidLength    error = kindSentinel{KindInvalidLength}
	ErrIndexOutOfBounds error = kindSentinel{KindIndexOutOfBounds}
	ErrInvalidRange     error = kindSentinel{KindInvalidRange}
	ErrUnsupported      error = kindSentinel{KindUnsupported}
)

func invalidBaseErr(b byte) *Error {
	return &Error{Kind: KindInvalidBase, Byte: b}
}

func sequenceTooLongErr(n int) *Error {
	return &Error{Kind: KindSequenceTooLong, Len: n}
}

func invalidLengthErr(n int) *Error {
	return &Error{Kind: KindInvalidLength, Len: n}
}

func indexOutOfBoundsErr(index, length int) *Error {
	return &Error{Kind: KindIndexOutOfBounds, Index: index, Length: length}
}
