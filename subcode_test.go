package subcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func failIfErr(t *testing.T, err error) {
	if err != nil {
		t.Fatal(err)
	}
}

// discBytes concatenates sectors of subchannel data.
func discBytes(sectors ...[]byte) []byte {
	var data []byte
	for _, s := range sectors {
		data = append(data, s...)
	}
	return data
}

func TestParseLength(t *testing.T) {
	_, err := Parse(make([]byte, 5))
	assert.Equal(t, InvalidDataLengthError{Length: 5}, err)

	_, err = Parse(make([]byte, 95))
	assert.Equal(t, InvalidDataLengthError{Length: 95}, err)

	_, err = Parse(make([]byte, 97))
	assert.Equal(t, InvalidDataLengthError{Length: 97}, err)

	_, err = Parse(make([]byte, BytesPerSector))
	assert.NoError(t, err)
}

func TestParseEmpty(t *testing.T) {
	data, err := Parse([]byte{})
	failIfErr(t, err)

	assert.Equal(t, 0, len(data.Sectors))
	assert.True(t, data.ContainsBasicDataOnly(), "no sectors means nothing non-basic")
	assert.Empty(t, data.DataChannels())
	assert.Equal(t, "00:00:00", data.Duration().String())
}

func TestParseSectorOrder(t *testing.T) {
	data, err := Parse(discBytes(
		sectorBytes(ChannelP),
		sectorBytes(ChannelQ),
		sectorBytes(ChannelR),
	))
	failIfErr(t, err)

	assert.Equal(t, 3, len(data.Sectors))
	assert.Equal(t, []Channel{ChannelP}, data.Sectors[0].DataChannels(), "sectors are in input order")
	assert.Equal(t, []Channel{ChannelQ}, data.Sectors[1].DataChannels())
	assert.Equal(t, []Channel{ChannelR}, data.Sectors[2].DataChannels())
}

func TestBasicDataForFullDisc(t *testing.T) {
	data, err := Parse(discBytes(
		sectorBytes(ChannelP, ChannelQ),
		sectorBytes(ChannelP, ChannelQ),
	))
	failIfErr(t, err)

	assert.Equal(t, 2, len(data.Sectors))
	assert.True(t, data.ContainsBasicDataOnly())
}

func TestNonBasicDataForFullDisc(t *testing.T) {
	// Ten sectors of solid 1s.
	ones := make([]byte, 10*BytesPerSector)
	for i := range ones {
		ones[i] = 1
	}

	data, err := Parse(ones)
	failIfErr(t, err)

	assert.Equal(t, 10, len(data.Sectors))
	assert.False(t, data.ContainsBasicDataOnly())
}

func TestMixedSectorModes(t *testing.T) {
	full := make([]byte, BytesPerSector)
	for i := range full {
		full[i] = 1
	}

	data, err := Parse(discBytes(sectorBytes(ChannelP, ChannelQ), full))
	failIfErr(t, err)

	assert.False(t, data.ContainsBasicDataOnly(), "one extended sector marks the whole disc")
}

func TestDiscDataChannels(t *testing.T) {
	data, err := Parse(discBytes(
		sectorBytes(ChannelP, ChannelQ),
		sectorBytes(ChannelW),
		sectorBytes(ChannelQ, ChannelR),
	))
	failIfErr(t, err)

	assert.Equal(t, []Channel{ChannelP, ChannelQ, ChannelR, ChannelW}, data.DataChannels())
}

func TestDuration(t *testing.T) {
	data, err := Parse(make([]byte, 80*BytesPerSector))
	failIfErr(t, err)

	assert.Equal(t, MSF{Minute: 0, Second: 1, Frame: 5}, data.Duration())
}

func TestReparse(t *testing.T) {
	raw := discBytes(
		sectorBytes(ChannelP, ChannelQ),
		sectorBytes(ChannelP, ChannelQ, ChannelR, ChannelW),
	)

	first, err := Parse(raw)
	failIfErr(t, err)
	second, err := Parse(raw)
	failIfErr(t, err)

	assert.Equal(t, first, second, "parsing is deterministic")
}
