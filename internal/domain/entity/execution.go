package entity

// InputAnswer valor capturado por el operador para una entrada.
type InputAnswer struct {
	ID    int      `json:"id"`
	Value *float64 `json:"value"`
}

// IndicatorAnswer selección del operador para un indicador. Solo uno de
// Checkbox, Range o Criteria es no nulo, según el tipo del indicador.
// State lo marca el backend en la previsualización: el indicador afectó la salida.
type IndicatorAnswer struct {
	ID        int     `json:"id"`
	EntradaID *int    `json:"entrada_id,omitempty"`
	Checkbox  *bool   `json:"checkbox,omitempty"`
	Range     *string `json:"range,omitempty"`
	Criteria  *string `json:"criteria,omitempty"`
	State     bool    `json:"state"`
}

// OutputValue valor de una salida, capturado o calculado por el backend.
type OutputValue struct {
	ID    int     `json:"id"`
	Value float64 `json:"value"`
}

// StageAnswer respuestas de una etapa.
type StageAnswer struct {
	NumEtapa    int               `json:"num_etapa"`
	Entradas    []InputAnswer     `json:"entradas"`
	Indicadores []IndicatorAnswer `json:"indicadores"`
	Salidas     []OutputValue     `json:"salidas"`
}

// ExecutionAnswer espejo de un Process con un valor mutable por entrada e
// indicador. La forma (cantidad y orden por etapa) es siempre la de la
// definición; solo cambian los valores hoja.
type ExecutionAnswer struct {
	ProcesoID int           `json:"id_proceso"`
	Etapas    []StageAnswer `json:"etapas"`
}

// NewExecutionAnswer construye el espejo vacío de p: entradas sin valor,
// indicadores con el slot de su tipo inicializado y salidas en cero.
func NewExecutionAnswer(p *Process) ExecutionAnswer {
	ans := ExecutionAnswer{ProcesoID: p.ID, Etapas: make([]StageAnswer, len(p.Etapas))}
	for i, st := range p.Etapas {
		sa := StageAnswer{
			NumEtapa:    st.NumEtapa,
			Entradas:    make([]InputAnswer, len(st.Entradas)),
			Indicadores: make([]IndicatorAnswer, len(st.Indicadores)),
			Salidas:     make([]OutputValue, len(st.Salidas)),
		}
		for j, in := range st.Entradas {
			sa.Entradas[j] = InputAnswer{ID: in.ID}
		}
		for j, ind := range st.Indicadores {
			ia := IndicatorAnswer{ID: ind.ID, EntradaID: copyIntPtr(ind.EntradaID)}
			switch ind.Tipo {
			case IndicatorCheckbox:
				f := false
				ia.Checkbox = &f
			case IndicatorRange:
				s := ""
				ia.Range = &s
			case IndicatorCriteria:
				s := ""
				ia.Criteria = &s
			}
			sa.Indicadores[j] = ia
		}
		for j, out := range st.Salidas {
			sa.Salidas[j] = OutputValue{ID: out.ID}
		}
		ans.Etapas[i] = sa
	}
	return ans
}

// Clone copia profunda de la etapa.
func (s StageAnswer) Clone() StageAnswer {
	out := StageAnswer{
		NumEtapa:    s.NumEtapa,
		Entradas:    make([]InputAnswer, len(s.Entradas)),
		Indicadores: make([]IndicatorAnswer, len(s.Indicadores)),
		Salidas:     append([]OutputValue(nil), s.Salidas...),
	}
	for i, in := range s.Entradas {
		out.Entradas[i] = InputAnswer{ID: in.ID}
		if in.Value != nil {
			v := *in.Value
			out.Entradas[i].Value = &v
		}
	}
	for i, ind := range s.Indicadores {
		c := IndicatorAnswer{ID: ind.ID, EntradaID: copyIntPtr(ind.EntradaID), State: ind.State}
		if ind.Checkbox != nil {
			v := *ind.Checkbox
			c.Checkbox = &v
		}
		if ind.Range != nil {
			v := *ind.Range
			c.Range = &v
		}
		if ind.Criteria != nil {
			v := *ind.Criteria
			c.Criteria = &v
		}
		out.Indicadores[i] = c
	}
	if out.Salidas == nil {
		out.Salidas = []OutputValue{}
	}
	return out
}

// Clone copia profunda del conjunto de respuestas.
func (a ExecutionAnswer) Clone() ExecutionAnswer {
	out := ExecutionAnswer{ProcesoID: a.ProcesoID, Etapas: make([]StageAnswer, len(a.Etapas))}
	for i, st := range a.Etapas {
		out.Etapas[i] = st.Clone()
	}
	return out
}

// PreviewIndicator efecto de un indicador en la previsualización.
type PreviewIndicator struct {
	ID    int  `json:"id"`
	State bool `json:"state"`
}

// PreviewResult respuesta de /execution/preview-evaluation para una etapa.
type PreviewResult struct {
	Salidas     []OutputValue      `json:"salidas"`
	Indicadores []PreviewIndicator `json:"indicadores"`
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
