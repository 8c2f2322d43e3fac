package subcode

import "fmt"

// InvalidDataLengthError is returned by [Parse] when the input does
// not divide evenly into 96-byte sectors. No sectors are parsed from
// such input.
type InvalidDataLengthError struct {
	Length int // length of the rejected input, in bytes
}

func (e InvalidDataLengthError) Error() string {
	return fmt.Sprintf("subcode: invalid data length; must be a multiple of %d bytes, was %d", BytesPerSector, e.Length)
}

// InvalidSectorLengthError is returned by [ParseSector] when the input
// is not exactly one sector of subchannel data.
type InvalidSectorLengthError struct {
	Length int // length of the rejected input, in bytes
}

func (e InvalidSectorLengthError) Error() string {
	return fmt.Sprintf("subcode: invalid sector length; must be exactly %d bytes, was %d", BytesPerSector, e.Length)
}

// InvalidChannelIndexError is returned by [ChannelFromIndex] for
// positions that have no channel assigned.
type InvalidChannelIndexError struct {
	Index int // the out-of-range position
}

func (e InvalidChannelIndexError) Error() string {
	return fmt.Sprintf("subcode: invalid channel index; must be 0 through %d, was %d", ChannelsPerSector-1, e.Index)
}

// ensure interface conformation
var (
	_ error = InvalidDataLengthError{}
	_ error = InvalidSectorLengthError{}
	_ error = InvalidChannelIndexError{}
)
