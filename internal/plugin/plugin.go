// Package plugin is the audio plugin shell around the editor. Its processor leaves audio untouched.
package plugin

import (
	"fmt"
	"io"
	"sync"

	"github.com/faiface/beep"

	"github.com/iburimskiy/circle-of-fifths/internal/config"
	"github.com/iburimskiy/circle-of-fifths/internal/editor"
	"github.com/iburimskiy/circle-of-fifths/internal/logger"
	"github.com/iburimskiy/circle-of-fifths/internal/theme"
)

// Info describes the plugin to a host.
type Info struct {
	ID       string
	Name     string
	Version  string
	Vendor   string
	Category string
}

// DefaultInfo is what the standalone host registers.
var DefaultInfo = Info{
	ID:       "com.iburimskiy.circle-of-fifths",
	Name:     "Circle of Fifths",
	Version:  "1.0.0",
	Vendor:   "iburimskiy",
	Category: "Fx|Tools",
}

// Channel counts of the plugin's buses.
const (
	InputChannels  = 2
	OutputChannels = 2
)

// Plugin creates processors and editors sharing one configuration and one set of diagrams.
type Plugin struct {
	info     Info
	cfg      config.Config
	registry *theme.Registry
}

func New(info Info, cfg config.Config, reg *theme.Registry) *Plugin {
	return &Plugin{info: info, cfg: cfg, registry: reg}
}

func (p *Plugin) Info() Info { return p.info }

// CreateProcessor returns a new, inactive processor.
func (p *Plugin) CreateProcessor() *Processor {
	return &Processor{plugin: p}
}

// Processor passes audio through unchanged.
type Processor struct {
	plugin *Plugin

	mu         sync.Mutex
	sampleRate float64
	maxBlock   int
	active     bool
	ctrls      []*beep.Ctrl
	frames     int64
}

// Initialize prepares the processor for blocks of up to maxBlock frames.
func (p *Processor) Initialize(sampleRate float64, maxBlock int) error {
	if sampleRate <= 0 || maxBlock <= 0 {
		return fmt.Errorf("initialize: sample rate %v, block size %d", sampleRate, maxBlock)
	}
	p.mu.Lock()
	p.sampleRate, p.maxBlock = sampleRate, maxBlock
	p.mu.Unlock()
	logger.Debug("processor initialized", logger.Fields{"sample_rate": sampleRate, "max_block": maxBlock})
	return nil
}

func (p *Processor) SampleRate() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sampleRate
}

// SetActive starts or stops processing. Inactive streams play silence.
func (p *Processor) SetActive(active bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = active
	for _, c := range p.ctrls {
		c.Paused = !active
	}
}

func (p *Processor) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Process copies each input channel to the matching output channel.
// Output channels without an input are cleared.
func (p *Processor) Process(in, out [][]float32) {
	for ch, dst := range out {
		n := 0
		if ch < len(in) {
			n = copy(dst, in[ch])
		}
		clear(dst[n:])
	}
}

func (p *Processor) LatencySamples() int { return 0 }

func (p *Processor) TailSamples() int { return 0 }

func (p *Processor) Programs() int { return 1 }

func (p *Processor) CurrentProgram() int { return 0 }

func (p *Processor) SetCurrentProgram(int) {}

func (p *Processor) ProgramName(int) string { return "" }

func (p *Processor) AcceptsMidi() bool { return false }

func (p *Processor) ProducesMidi() bool { return false }

func (p *Processor) IsMidiEffect() bool { return false }

// SaveState writes nothing; the editor settings come from configuration.
func (p *Processor) SaveState(w io.Writer) error { return nil }

func (p *Processor) LoadState(r io.Reader) error { return nil }

func (p *Processor) HasEditor() bool { return true }

// CreateEditor opens a new editor with the plugin's configuration.
func (p *Processor) CreateEditor() (*editor.Editor, error) {
	return editor.New(p.plugin.cfg, p.plugin.registry)
}

// SupportsLayout accepts mono or stereo, with as many inputs as outputs.
func (p *Processor) SupportsLayout(in, out int) bool {
	return (out == 1 || out == 2) && in == out
}
