package pipeline

import (
	"io"

	"github.com/joeydtaylor/unbase/pkg/internal/codec"
	"github.com/joeydtaylor/unbase/pkg/internal/types"
)

// SetInputPath sets the encoded input file.
func (p *Pipeline) SetInputPath(path string) {
	p.requireNotRunning("SetInputPath")

	p.configLock.Lock()
	p.inputPath = path
	p.configLock.Unlock()
}

// SetOutput sets the primary sink. Nil is ignored.
func (p *Pipeline) SetOutput(s types.PayloadSink) {
	p.requireNotRunning("SetOutput")

	if s == nil {
		return
	}
	p.configLock.Lock()
	p.output = s
	p.configLock.Unlock()
}

// ConnectMirror appends mirror sinks, skipping nils.
func (p *Pipeline) ConnectMirror(sinks ...types.PayloadSink) {
	p.requireNotRunning("ConnectMirror")

	n := 0
	for _, s := range sinks {
		if s != nil {
			sinks[n] = s
			n++
		}
	}
	if n == 0 {
		return
	}

	p.configLock.Lock()
	p.mirrors = append(p.mirrors, sinks[:n]...)
	p.configLock.Unlock()

	for _, s := range sinks[:n] {
		p.NotifyLoggers(types.DebugLevel, "ConnectMirror",
			"component", p.componentMetadata,
			"event", "ConnectMirror",
			"mirror", s.GetComponentMetadata(),
		)
	}
}

// SetDecoder replaces the payload decoder. Nil is ignored.
func (p *Pipeline) SetDecoder(d types.Decoder[[]byte]) {
	p.requireNotRunning("SetDecoder")

	if d == nil {
		return
	}
	p.configLock.Lock()
	p.decoder = d
	p.configLock.Unlock()
}

// SetDecompression selects the algorithm applied after decoding. An unknown
// name is remembered and reported by the next Run.
func (p *Pipeline) SetDecompression(algorithm string) error {
	p.requireNotRunning("SetDecompression")

	c, err := codec.ParseCompression(algorithm)

	p.configLock.Lock()
	defer p.configLock.Unlock()
	if err != nil {
		p.configErr = err
		return err
	}
	p.compression = c
	p.configErr = nil
	return nil
}

// SetStdout redirects the confirmation line. Nil discards it.
func (p *Pipeline) SetStdout(w io.Writer) {
	p.requireNotRunning("SetStdout")

	if w == nil {
		w = io.Discard
	}
	p.configLock.Lock()
	p.stdout = w
	p.configLock.Unlock()
}

// ConnectLogger registers loggers for the pipeline.
func (p *Pipeline) ConnectLogger(loggers ...types.Logger) {
	p.requireNotRunning("ConnectLogger")

	n := 0
	for _, l := range loggers {
		if l != nil {
			loggers[n] = l
			n++
		}
	}
	if n == 0 {
		return
	}

	p.loggersLock.Lock()
	p.loggers = append(p.loggers, loggers[:n]...)
	p.loggersLock.Unlock()
}

// GetComponentMetadata returns the pipeline metadata.
func (p *Pipeline) GetComponentMetadata() types.ComponentMetadata {
	return p.componentMetadata
}

// SetComponentMetadata sets the pipeline name and ID.
func (p *Pipeline) SetComponentMetadata(name string, id string) {
	p.requireNotRunning("SetComponentMetadata")

	p.componentMetadata.Name = name
	p.componentMetadata.ID = id
}
