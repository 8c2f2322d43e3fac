package subcode

// Sector is one sector's worth of subchannel data, decoded into its
// eight channels. Subcodes are stored in channel order, so
// Subcodes[ChannelQ] is the Q channel.
type Sector struct {
	Subcodes [ChannelsPerSector]Subcode
}

// ParseSector decodes a single sector of subchannel data. The input
// must be exactly [BytesPerSector] bytes; anything else fails with
// [InvalidSectorLengthError]. Bytes are copied out of data, so the
// caller is free to reuse the buffer.
//
// Channels are assigned positionally: the first 12 bytes are channel
// P, the next 12 are Q, and so on through W.
func ParseSector(data []byte) (Sector, error) {
	var sector Sector
	if len(data) != BytesPerSector {
		return sector, InvalidSectorLengthError{Length: len(data)}
	}
	for i := range sector.Subcodes {
		channel, err := ChannelFromIndex(i)
		if err != nil {
			return Sector{}, err
		}
		sector.Subcodes[i].Channel = channel
		copy(sector.Subcodes[i].Data[:], data[i*BytesPerChannel:(i+1)*BytesPerChannel])
	}
	return sector, nil
}

// ContainsBasicDataOnly reports whether the sector uses only the
// channels defined by the base CD-DA and CD-ROM specifications. It is
// true when the extended channels R through W are all empty. P and Q
// are not checked: they carry flags and timing on every well-formed
// disc, so data there says nothing unusual about the disc.
func (s Sector) ContainsBasicDataOnly() bool {
	for _, code := range s.Subcodes {
		if code.Channel.Extended() && !code.IsEmpty() {
			return false
		}
	}
	return true
}

// DataChannels returns the channels carrying any data in this sector,
// in channel order. A standard disc typically yields P and Q; a longer
// list means the disc carries extended content such as CD+G or
// CD-Text.
func (s Sector) DataChannels() []Channel {
	var channels []Channel
	for _, code := range s.Subcodes {
		if !code.IsEmpty() {
			channels = append(channels, code.Channel)
		}
	}
	return channels
}

// Subcode returns the sector's data for one channel. A channel's value
// is its position within the sector, so this is a plain array lookup.
func (s Sector) Subcode(c Channel) Subcode {
	return s.Subcodes[c]
}
