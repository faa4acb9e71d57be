package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProgrammingInfo_Nil(t *testing.T) {
	assert.Nil(t, NormalizeProgrammingInfo(nil))
}

func TestNormalizeProgrammingInfo_FillsBlanksIndependently(t *testing.T) {
	tests := []struct {
		name string
		in   Option
		want Option
	}{
		{
			name: "all blank",
			in:   Option{},
			want: Option{Name: NotApplicable, Models: []string{NotApplicable}, Color: NotApplicable},
		},
		{
			name: "blank name only",
			in:   Option{Name: "  ", Models: []string{"KD B16"}, Color: "Blue"},
			want: Option{Name: NotApplicable, Models: []string{"KD B16"}, Color: "Blue"},
		},
		{
			name: "blank color only",
			in:   Option{Name: "OEM Remote", Models: []string{"A"}, Color: " "},
			want: Option{Name: "OEM Remote", Models: []string{"A"}, Color: NotApplicable},
		},
		{
			name: "empty models only",
			in:   Option{Name: "OEM Remote", Color: "Black"},
			want: Option{Name: "OEM Remote", Models: []string{NotApplicable}, Color: "Black"},
		},
		{
			name: "trims populated fields",
			in:   Option{Name: " OEM Remote ", Models: []string{"A"}, Color: " Black "},
			want: Option{Name: "OEM Remote", Models: []string{"A"}, Color: "Black"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NormalizeProgrammingInfo(&ProgrammingInfo{RemoteOptions: []Option{tt.in}})
			assert.Equal(t, []Option{tt.want}, out.RemoteOptions)
		})
	}
}

func TestNormalizeProgrammingInfo_EmptyCategoryGetsOneSentinelEntry(t *testing.T) {
	out := NormalizeProgrammingInfo(&ProgrammingInfo{})

	sentinel := []Option{{Name: NotApplicable, Models: []string{NotApplicable}, Color: NotApplicable}}
	assert.Equal(t, sentinel, out.RemoteOptions)
	assert.Equal(t, sentinel, out.KeyBladeOptions)
	assert.Equal(t, sentinel, out.CloningOptions)
	assert.Equal(t, sentinel, out.AllKeysLost)
	assert.Equal(t, sentinel, out.AddSpareKey)
	assert.Equal(t, sentinel, out.AddRemote)
	assert.Equal(t, sentinel, out.PinRequired)
	assert.Equal(t, sentinel, out.PinReading)
	assert.Equal(t, sentinel, out.RemoteProgramming)
}

func TestNormalizeProgrammingInfo_KeepsEntryOrder(t *testing.T) {
	out := NormalizeProgrammingInfo(&ProgrammingInfo{
		AllKeysLost: []Option{
			{Name: "OBD", Models: []string{"Autel IM608"}, Color: "Red"},
			{Name: "", Models: []string{"Smart Pro"}, Color: "Green"},
		},
	})

	assert.Len(t, out.AllKeysLost, 2)
	assert.Equal(t, "OBD", out.AllKeysLost[0].Name)
	assert.Equal(t, NotApplicable, out.AllKeysLost[1].Name)
	assert.Equal(t, "Green", out.AllKeysLost[1].Color)
}

func TestNormalizeProgrammingInfo_DoesNotMutateInput(t *testing.T) {
	in := &ProgrammingInfo{RemoteOptions: []Option{{Name: ""}}}

	NormalizeProgrammingInfo(in)

	assert.Equal(t, "", in.RemoteOptions[0].Name)
}
