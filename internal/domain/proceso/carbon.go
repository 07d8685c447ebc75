package proceso

// Side lado de la barra que recibe el énfasis visual.
type Side string

const (
	SideNone   Side = ""
	SideInput  Side = "entrada"
	SideOutput Side = "salida"
)

// CarbonBar porcentajes de la barra entrada/salida de un proceso.
type CarbonBar struct {
	Inputs    float64 `json:"entradas"`
	Outputs   float64 `json:"salidas"`
	InputPct  float64 `json:"porcentaje_entrada"`
	OutputPct float64 `json:"porcentaje_salida"`
	Emphasis  Side    `json:"enfasis"`
}

// CarbonRatio reparte el ancho de la barra entre entradas y salidas.
//
// Cada lado recibe x*80/total + 10 (10 si ambos son cero), la suma se limita a
// 100 y ambos se renormalizan para sumar exactamente 100. El énfasis va al
// lado con cantidad estrictamente mayor; en empate no va a ninguno.
// No se validan negativos ni valores no finitos.
func CarbonRatio(inputs, outputs float64) CarbonBar {
	total := inputs + outputs
	rawIn, rawOut := 10.0, 10.0
	if total > 0 {
		rawIn = inputs/total*80 + 10
		rawOut = outputs/total*80 + 10
	}

	sum := rawIn + rawOut
	if sum > 100 {
		sum = 100
	}

	bar := CarbonBar{
		Inputs:    inputs,
		Outputs:   outputs,
		InputPct:  rawIn / sum * 100,
		OutputPct: rawOut / sum * 100,
	}
	switch {
	case inputs > outputs:
		bar.Emphasis = SideInput
	case outputs > inputs:
		bar.Emphasis = SideOutput
	}
	return bar
}
