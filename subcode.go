// Package subcode parses the subchannel data stored alongside the
// audio or data payload of a CD.
//
// Every sector of a CD carries 96 bytes of subchannel data multiplexed
// across eight channels named P through W. The P and Q channels hold
// the section flags and timing defined by the base CD-DA and CD-ROM
// specifications; R through W are reserved for extensions such as CD+G
// karaoke graphics and CD-Text, so data there marks a disc as carrying
// more than plain audio or data.
//
// [Parse] validates and splits a buffer of subchannel bytes into
// [Sector]s of eight [Subcode]s each. The classification queries then
// report which channels are in use, without interpreting their
// contents: decoding Q-channel timecodes or the table of contents is
// outside the scope of this package.
//
// The package operates on bytes already in memory, in sequential
// channel order (all 12 P bytes, then Q, through W). Reading
// subchannel data from a drive or a disc image, and de-interleaving
// raw drive output where necessary, are the caller's responsibility.
//
// For more information, see [Wikipedia].
//
// [Wikipedia]: https://en.wikipedia.org/wiki/Compact_Disc_subcode
package subcode

// Data is parsed subchannel data covering a run of consecutive
// sectors. Data is a plain value: once parsed it is never modified,
// and it keeps no reference to the buffer it was parsed from.
type Data struct {
	Sectors []Sector
}

// Parse splits subchannel data into sectors. The input must be a
// whole number of [BytesPerSector]-byte sectors; anything else fails
// with [InvalidDataLengthError]. An empty input is valid and parses
// to zero sectors. A failure parsing any sector aborts the whole
// parse with no partial result.
func Parse(data []byte) (Data, error) {
	if len(data)%BytesPerSector != 0 {
		return Data{}, InvalidDataLengthError{Length: len(data)}
	}
	sectors := make([]Sector, len(data)/BytesPerSector)
	for i := range sectors {
		sector, err := ParseSector(data[i*BytesPerSector : (i+1)*BytesPerSector])
		if err != nil {
			return Data{}, err
		}
		sectors[i] = sector
	}
	return Data{Sectors: sectors}, nil
}

// ContainsBasicDataOnly reports whether every sector stays within the
// base CD specifications. See [Sector.ContainsBasicDataOnly]. It is
// vacuously true for zero sectors.
func (d Data) ContainsBasicDataOnly() bool {
	for _, sector := range d.Sectors {
		if !sector.ContainsBasicDataOnly() {
			return false
		}
	}
	return true
}

// DataChannels returns every channel carrying data in at least one
// sector, in channel order.
func (d Data) DataChannels() []Channel {
	var used [ChannelsPerSector]bool
	for _, sector := range d.Sectors {
		for _, code := range sector.Subcodes {
			if !code.IsEmpty() {
				used[code.Channel] = true
			}
		}
	}
	var channels []Channel
	for i, u := range used {
		if u {
			channels = append(channels, Channel(i))
		}
	}
	return channels
}

// Duration returns the playing time the parsed sectors cover, at 75
// sectors per second.
func (d Data) Duration() MSF {
	return SectorsToMSF(len(d.Sectors))
}
