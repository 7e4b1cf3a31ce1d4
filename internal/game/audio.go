package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies one of the procedural effects.
type SoundKind int

const (
	SoundCorrect SoundKind = iota
	SoundWrong
	SoundLevelUp
	SoundGameOver
)

// AudioSystem plays short procedurally synthesized effects. All methods are
// nil-safe so a session without audio (headless, or init failure) just
// passes a nil system around.
type AudioSystem struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
}

// NewAudio opens the audio device. volume is clamped to [0,1].
func NewAudio(volume float64) (*AudioSystem, error) {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepth)
	if err != nil {
		return nil, err
	}
	if volume < 0 {
		volume = 0
	} else if volume > 1 {
		volume = 1
	}
	return &AudioSystem{ctx: ctx, ready: ready, volume: volume}, nil
}

// Play fires an effect without blocking the game loop. Dropped silently
// until the device is ready.
func (a *AudioSystem) Play(kind SoundKind) {
	if a == nil || a.volume == 0 {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		player := a.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(a.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels at
// frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < 2; ch++ {
		off := i*8 + ch*4
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
}

func makeBuf(n int) []byte { return make([]byte, n*8) }

// adsr returns an envelope value at normalized progress in [0,1];
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample at time t.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// softSat keeps summed voices out of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundCorrect:
		return genCorrect()
	case SoundWrong:
		return genWrong()
	case SoundLevelUp:
		return genLevelUp()
	case SoundGameOver:
		return genGameOver()
	}
	return nil
}

// genCorrect: bright ascending FM pop.
func genCorrect() []byte {
	n := int(0.10 * sampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.12)
		freq := 520 + 640*p
		s := fm(t, freq, 2.0, 3.0*env) * env * 0.5
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.05
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genWrong: dull descending tone.
func genWrong() []byte {
	n := int(0.18 * sampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.5, 0.1, 0.3)
		freq := 300 - 190*p
		s := fm(t, freq, 1.5, 2.5*(1-p)) * env * 0.5
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genLevelUp: short ascending bell arpeggio, notes ringing into each other.
func genLevelUp() []byte {
	notes := []float64{523.25, 659.25, 783.99, 1046.5} // C5 E5 G5 C6
	noteStep := int(0.08 * sampleRate)
	total := len(notes)*noteStep + int(0.22*sampleRate)
	mix := make([]float64, total)
	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / sampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.6, 0.04, 0.3)
			mix[start+j] += fm(t, freq, 3.5, 5.0*env) * env * 0.3
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: slow staggered descending minor chord.
func genGameOver() []byte {
	n := int(0.7 * sampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00},
		{261.63, 0.13},
		{220.00, 0.26},
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * sampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / sampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.01, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.02)
			mix[i] += fm(t, freq, 2.0, 2.0*env) * env * 0.32
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
