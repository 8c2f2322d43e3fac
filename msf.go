package subcode

import "fmt"

// MSF is a Redbook MM:SS:FF timecode. Track offsets and disc lengths
// are conventionally given in minutes, seconds, and frames, where a
// frame is one sector, 1/75th of a second.
type MSF struct {
	Minute int
	Second int // 0-59
	Frame  int // 0-74
}

// SectorsToMSF converts a sector count to its MM:SS:FF timecode.
func SectorsToMSF(sectors int) MSF {
	return MSF{
		Minute: sectors / (60 * SectorsPerSecond),
		Second: (sectors % (60 * SectorsPerSecond)) / SectorsPerSecond,
		Frame:  sectors % SectorsPerSecond,
	}
}

// Sectors returns the number of sectors the timecode covers.
func (m MSF) Sectors() int {
	return (m.Minute*60+m.Second)*SectorsPerSecond + m.Frame
}

// String formats the timecode as MM:SS:FF.
func (m MSF) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", m.Minute, m.Second, m.Frame)
}
