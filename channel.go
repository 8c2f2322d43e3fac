package subcode

import "fmt"

// Channel identifies one of the eight subchannels, P through W.
// The value of a Channel is also its chunk position within a sector's
// subchannel block: channel P is bytes 0-11, Q is bytes 12-23, and so
// on through W.
type Channel int

const (
	ChannelP Channel = 0
	ChannelQ Channel = 1
	ChannelR Channel = 2
	ChannelS Channel = 3
	ChannelT Channel = 4
	ChannelU Channel = 5
	ChannelV Channel = 6
	ChannelW Channel = 7
)

const channelNames = "PQRSTUVW"

// ChannelFromIndex maps a chunk position within a sector to its
// channel. Positions outside 0 through 7 fail with
// [InvalidChannelIndexError].
func ChannelFromIndex(index int) (Channel, error) {
	if index < 0 || index >= ChannelsPerSector {
		return 0, InvalidChannelIndexError{Index: index}
	}
	return Channel(index), nil
}

// String returns the channel's single-letter name.
func (c Channel) String() string {
	if c < ChannelP || c > ChannelW {
		return fmt.Sprintf("channel(%d)", int(c))
	}
	return string(channelNames[c])
}

// Extended reports whether the channel is one of R through W, the six
// channels the base CD specifications leave unused. Redbook audio and
// Yellowbook data discs carry data in P and Q only; anything in the
// extended channels means CD+G graphics, CD-Text, or another
// non-standard use of the disc.
func (c Channel) Extended() bool {
	return c >= ChannelR
}

// Subcode is one channel's slice of one sector's subchannel data.
// Subcodes are plain values: they are copied whole on assignment and
// never reference the buffer they were parsed from.
type Subcode struct {
	Channel Channel
	Data    [BytesPerChannel]byte
}

// IsEmpty reports whether every byte is zero.
func (s Subcode) IsEmpty() bool {
	return s.Data == [BytesPerChannel]byte{}
}
