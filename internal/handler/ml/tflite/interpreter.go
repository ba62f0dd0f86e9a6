// Package tflite runs the quantized digit model in-process through the
// TensorFlow Lite C API.
package tflite

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mattn/go-tflite"
	"github.com/rs/zerolog"

	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/domain"
)

var errClosed = errors.New("interpreter closed")

// Interpreter holds a loaded model with its tensors allocated.
// Calls to Classify are serialized.
type Interpreter struct {
	mu      sync.Mutex
	model   *tflite.Model
	options *tflite.InterpreterOptions
	interp  *tflite.Interpreter
}

// Open loads the model at path and allocates its tensors. The model must
// take a single int8 28x28 input and produce int8 class scores.
func Open(path string, threads int, log zerolog.Logger) (*Interpreter, error) {
	model := tflite.NewModelFromFile(path)
	if model == nil {
		return nil, fmt.Errorf("load model %s", path)
	}

	options := tflite.NewInterpreterOptions()
	options.SetNumThread(max(threads, 1))
	options.SetErrorReporter(func(msg string, _ interface{}) {
		log.Error().Str("component", "tflite").Msg(msg)
	}, nil)

	interp := tflite.NewInterpreter(model, options)
	if interp == nil {
		options.Delete()
		model.Delete()
		return nil, errors.New("create interpreter")
	}
	i := &Interpreter{model: model, options: options, interp: interp}

	if status := interp.AllocateTensors(); status != tflite.OK {
		i.Close()
		return nil, fmt.Errorf("allocate tensors: status %d", status)
	}

	in := interp.GetInputTensor(0)
	if in.Type() != tflite.Int8 {
		i.Close()
		return nil, fmt.Errorf("input tensor type %v, want int8", in.Type())
	}
	if n := int(in.ByteSize()); n != domain.ImageWidth*domain.ImageHeight {
		i.Close()
		return nil, fmt.Errorf("input tensor holds %d bytes, want %d", n, domain.ImageWidth*domain.ImageHeight)
	}
	if out := interp.GetOutputTensor(0); out.Type() != tflite.Int8 {
		i.Close()
		return nil, fmt.Errorf("output tensor type %v, want int8", out.Type())
	}
	return i, nil
}

// Classify copies img into the input tensor, invokes the model and returns
// a copy of the output scores.
func (i *Interpreter) Classify(ctx context.Context, img *domain.Image) ([]int8, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if i.interp == nil {
		return nil, errClosed
	}

	in := i.interp.GetInputTensor(0)
	if status := in.CopyFromBuffer(img.Pix[:]); status != tflite.OK {
		return nil, fmt.Errorf("copy input tensor: status %d", status)
	}
	if status := i.interp.Invoke(); status != tflite.OK {
		return nil, fmt.Errorf("invoke: status %d", status)
	}

	out := i.interp.GetOutputTensor(0)
	scores := make([]int8, out.ByteSize())
	if status := out.CopyToBuffer(scores); status != tflite.OK {
		return nil, fmt.Errorf("copy output tensor: status %d", status)
	}
	return scores, nil
}

func (i *Interpreter) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.interp != nil {
		i.interp.Delete()
		i.interp = nil
	}
	if i.options != nil {
		i.options.Delete()
		i.options = nil
	}
	if i.model != nil {
		i.model.Delete()
		i.model = nil
	}
	return nil
}
