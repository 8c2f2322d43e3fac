package subcode

// ChannelsPerSector is the number of subchannels multiplexed into each
// sector of a CD, named P through W. Every channel-data frame on the
// disc carries one subcode byte, one bit per channel.
const ChannelsPerSector = 8

// BytesPerChannel is the number of bytes each channel contributes to
// one sector. A sector spans 98 channel-data frames; the subcode bytes
// of the first two hold the S0/S1 sync patterns, leaving 96 bits (12
// bytes) per channel.
//
// For more information, see [Wikipedia].
//
// [Wikipedia]: https://en.wikipedia.org/wiki/Compact_Disc_subcode
const BytesPerChannel = 12

// BytesPerSector is the number of bytes of subchannel data in one
// sector of CD data, 96 bytes. This is separate from, and alongside,
// the 2352 bytes of audio the same sector carries.
//
// Sectors are the unit of interest when working with subchannel data.
// Parse consumes data in units of sectors.
const BytesPerSector = BytesPerChannel * ChannelsPerSector

// SectorsPerSecond is the number of sectors in one second of CD data,
// defined as 75 by the Redbook standard. Track offsets and disc
// lengths are conventionally given in MM:SS:FF timecode at this rate.
const SectorsPerSecond = 75
