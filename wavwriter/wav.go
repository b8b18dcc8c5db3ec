// This file is part of Gopher2e.
//
// Gopher2e is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2e is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2e.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter records the speaker and writes it to disk as a WAV file.
// Speaker toggles are buffered in memory in their entirety and the WAV file
// is written on program end. It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher2e/curated"
	"github.com/jetsetilly/gopher2e/logger"
)

// WavError is the pattern used for all errors originating from the package.
const WavError = "wavwriter: %v"

// SampleFreq is the sample rate of the WAV file.
const SampleFreq = 44100

// ClockFreq is the CPU clock frequency of an NTSC machine.
const ClockFreq = 1020484

// Amplitude of the 16 bit samples. The speaker is either fully in or fully
// out.
const Amplitude = 8192

// relax is the number of cycles after which an untouched speaker cone
// returns to the centre position.
const relax = ClockFreq / 50

// WavWriter implements the memory.SpeakerListener interface.
type WavWriter struct {
	filename string
	toggles  []uint64
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf(WavError, "no filename")
	}
	aw := &WavWriter{
		filename: filename,
		toggles:  make([]uint64, 0, 1024),
	}
	return aw, nil
}

// SpeakerToggle implements the memory.SpeakerListener interface.
func (aw *WavWriter) SpeakerToggle(cycle uint64) {
	aw.toggles = append(aw.toggles, cycle)
}

// Reset forgets all recorded toggles.
func (aw *WavWriter) Reset() {
	aw.toggles = aw.toggles[:0]
}

// Toggles returns the number of recorded speaker toggles.
func (aw *WavWriter) Toggles() int {
	return len(aw.toggles)
}

// Samples converts the recorded toggles into PCM samples covering the period
// from cycle zero to the end cycle.
func (aw *WavWriter) Samples(end uint64) []int {
	n := int(end * SampleFreq / ClockFreq)
	data := make([]int, n)

	level := -Amplitude
	t := 0
	for i := range data {
		cycle := uint64(i) * ClockFreq / SampleFreq
		for t < len(aw.toggles) && aw.toggles[t] <= cycle {
			level = -level
			t++
		}

		// a speaker left alone drifts back to silence
		if t == 0 || cycle-aw.toggles[t-1] > relax {
			data[i] = 0
		} else {
			data[i] = level
		}
	}

	return data
}

// Encode writes the samples to the io.WriteSeeker as a 16 bit mono WAV.
func (aw *WavWriter) Encode(w io.WriteSeeker, end uint64) error {
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleFreq,
		},
		Data:           aw.Samples(end),
		SourceBitDepth: 16,
	}

	enc := wav.NewEncoder(w, SampleFreq, 16, 1, 1)
	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WavError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(WavError, err)
	}
	return nil
}

// EndMixing writes the WAV file. The end cycle is the machine's cycle count
// at the point of writing.
func (aw *WavWriter) EndMixing(end uint64) (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WavError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WavError, err)
		}
	}()

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s (%d toggles)", aw.filename, len(aw.toggles))

	return aw.Encode(f, end)
}
