package notify

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// SoundFormats lists the accepted sound file extensions.
var SoundFormats = []string{".mp3", ".ogg", ".flac", ".wav"}

// Sound plays an audio file to completion.
type Sound struct {
	Path string
}

// Send ignores the reminder text and plays the sound.
func (s Sound) Send(string, string) error {
	stream, err := prepSoundStream(s.Path)
	if err != nil {
		return errSoundFailed.Fmt(s.Path).Wrap(err)
	}

	defer stream.Close()

	done := make(chan struct{})

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		close(done)
	})))

	<-done

	return nil
}

func decoderFor(path string) (
	func(f *os.File) (beep.StreamSeekCloser, beep.Format, error),
	error,
) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
			return vorbis.Decode(f)
		}, nil
	case ".mp3":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
			return mp3.Decode(f)
		}, nil
	case ".flac":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
			return flac.Decode(f)
		}, nil
	case ".wav":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
			return wav.Decode(f)
		}, nil
	}

	return nil, ErrInvalidSoundFormat
}

// prepSoundStream decodes the sound file at path and initialises the speaker
// for its sample rate. The decoder owns the file once decoding succeeds.
func prepSoundStream(path string) (beep.StreamSeekCloser, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stream, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	bufferSize := 10

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
	if err != nil {
		_ = stream.Close()
		return nil, err
	}

	return stream, nil
}
