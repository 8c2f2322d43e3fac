package subcode_test

import (
	"fmt"

	"github.com/rabidaudio/subcode"
)

func Example() {
	// Two sectors of subchannel data: the first uses only the basic
	// P and Q channels, the second also carries data in R.
	buf := make([]byte, 2*subcode.BytesPerSector)
	channel := func(sector int, c subcode.Channel) []byte {
		start := sector*subcode.BytesPerSector + int(c)*subcode.BytesPerChannel
		return buf[start : start+subcode.BytesPerChannel]
	}
	channel(0, subcode.ChannelP)[0] = 0xFF
	channel(0, subcode.ChannelQ)[0] = 0x41
	channel(1, subcode.ChannelQ)[0] = 0x41
	channel(1, subcode.ChannelR)[0] = 0x2A

	data, err := subcode.Parse(buf)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("sectors:", len(data.Sectors))
	fmt.Println("basic only:", data.ContainsBasicDataOnly())
	for _, sector := range data.Sectors {
		fmt.Println(sector.DataChannels())
	}
	// Output:
	// sectors: 2
	// basic only: false
	// [P Q]
	// [Q R]
}

func ExampleSectorsToMSF() {
	// A full Redbook disc holds 74 minutes of audio.
	fmt.Println(subcode.SectorsToMSF(333000))
	// Output: 74:00:00
}
