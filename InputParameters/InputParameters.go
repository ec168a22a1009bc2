package InputParameters

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/gohat/utils"
)

var ErrInvalidParameter = errors.New("invalid input parameter")

type ModelType uint8

const (
	M_Diffusion ModelType = iota
	M_Wave
)

func (m ModelType) String() string {
	switch m {
	case M_Diffusion:
		return "diffusion"
	case M_Wave:
		return "wave"
	}
	return "unknown"
}

func NewModelType(label string) (m ModelType, err error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "diffusion", "heat":
		m = M_Diffusion
	case "wave":
		m = M_Wave
	default:
		err = fmt.Errorf("%w: unknown model %q, use diffusion or wave", ErrInvalidParameter, label)
	}
	return
}

type BCParameters struct {
	Type string  `json:"Type"`
	A    float64 `json:"A"` // Value or slope at XMin
	B    float64 `json:"B"` // Value or slope at XMax
}

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title        string       `json:"Title"`
	Model        string       `json:"Model"`
	Stepper      string       `json:"Stepper"`
	XMin         float64      `json:"XMin"`
	XMax         float64      `json:"XMax"`
	N            int          `json:"N"` // Number of samples
	CFL          float64      `json:"CFL"`
	FinalTime    float64      `json:"FinalTime"`
	BC           BCParameters `json:"BC"`
	FixedEnds    bool         `json:"FixedEnds"` // Wave only, holds u fixed at the walls
	LogFrequency int          `json:"LogFrequency"`
	InitType     string       `json:"InitType"`
	Mode         int          `json:"Mode"`
}

// Defaults returns a runnable parameter set for the model
func Defaults(model ModelType) (ip *InputParameters1D) {
	ip = &InputParameters1D{
		Model:        model.String(),
		Stepper:      "rk2",
		XMin:         0,
		XMax:         1,
		N:            41,
		LogFrequency: 100,
		Mode:         1,
	}
	switch model {
	case M_Diffusion:
		ip.Title = "Diffusion"
		ip.CFL = 0.4
		ip.FinalTime = 0.1
		ip.BC = BCParameters{Type: "Dirichlet"}
		ip.InitType = "sine"
	case M_Wave:
		ip.Title = "Wave"
		ip.CFL = 0.02
		ip.FinalTime = 100
		ip.BC = BCParameters{Type: "None"}
		ip.FixedEnds = true
		ip.InitType = "standing"
	}
	return
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) ModelType() (ModelType, error) {
	return NewModelType(ip.Model)
}

func (ip *InputParameters1D) BCType() (utils.BCType, error) {
	if len(strings.TrimSpace(ip.BC.Type)) == 0 {
		return utils.BCNone, nil
	}
	return utils.ParseBCName(ip.BC.Type)
}

func (ip *InputParameters1D) Validate() (err error) {
	var errs []error
	if _, err = ip.ModelType(); err != nil {
		errs = append(errs, err)
	}
	if !(ip.XMin < ip.XMax) {
		errs = append(errs, fmt.Errorf("%w: XMin = %v must be less than XMax = %v", ErrInvalidParameter, ip.XMin, ip.XMax))
	}
	if ip.N < 3 {
		errs = append(errs, fmt.Errorf("%w: N = %d, need at least 3 samples", ErrInvalidParameter, ip.N))
	}
	if ip.CFL <= 0 {
		errs = append(errs, fmt.Errorf("%w: CFL = %v must be positive", ErrInvalidParameter, ip.CFL))
	}
	if ip.FinalTime <= 0 {
		errs = append(errs, fmt.Errorf("%w: FinalTime = %v must be positive", ErrInvalidParameter, ip.FinalTime))
	}
	if ip.LogFrequency < 0 {
		errs = append(errs, fmt.Errorf("%w: LogFrequency = %d must not be negative", ErrInvalidParameter, ip.LogFrequency))
	}
	if _, err = ip.BCType(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidParameter, err))
	}
	return errors.Join(errs...)
}

func (ip *InputParameters1D) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%s]\t\t= Model\n", ip.Model)
	fmt.Fprintf(w, "[%s]\t\t\t= Stepper\n", ip.Stepper)
	fmt.Fprintf(w, "[%8.5f, %8.5f]\t= Domain\n", ip.XMin, ip.XMax)
	fmt.Fprintf(w, "[%d]\t\t\t= Samples\n", ip.N)
	fmt.Fprintf(w, "%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Fprintf(w, "%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Fprintf(w, "[%s]\t= InitType, Mode = %d\n", ip.InitType, ip.Mode)
	fmt.Fprintf(w, "BC[%s] = %v, %v\n", ip.BC.Type, ip.BC.A, ip.BC.B)
	if ip.FixedEnds {
		fmt.Fprintf(w, "Fixed ends\n")
	}
}
