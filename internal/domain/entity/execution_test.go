package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-acib/internal/domain/entity"
)

func intPtr(v int) *int { return &v }

func mezcla() *entity.Process {
	return &entity.Process{
		ID:     7,
		Nombre: "Mezcla",
		Etapas: []entity.Stage{
			{
				NumEtapa: 1,
				Entradas: []entity.Input{{ID: 1, Nombre: "Agua", Tipo: entity.KindFloat}},
				Indicadores: []entity.Indicator{
					{ID: 1, Nombre: "Temperatura", Tipo: entity.IndicatorRange, EntradaID: intPtr(1)},
					{ID: 2, Nombre: "Visual", Tipo: entity.IndicatorCheckbox},
					{ID: 3, Nombre: "Presión", Tipo: entity.IndicatorCriteria},
				},
				Salidas: []entity.Output{{ID: 1, Nombre: "Producto", Tipo: entity.KindFloat}},
			},
		},
	}
}

func TestNewExecutionAnswer_EspejoDeLaDefinicion(t *testing.T) {
	ans := entity.NewExecutionAnswer(mezcla())

	assert.Equal(t, 7, ans.ProcesoID)
	require.Len(t, ans.Etapas, 1)
	st := ans.Etapas[0]
	assert.Equal(t, 1, st.NumEtapa)
	require.Len(t, st.Entradas, 1)
	assert.Nil(t, st.Entradas[0].Value, "las entradas arrancan sin valor")

	require.Len(t, st.Indicadores, 3)
	assert.NotNil(t, st.Indicadores[0].Range)
	assert.Nil(t, st.Indicadores[0].Checkbox)
	assert.Nil(t, st.Indicadores[0].Criteria)
	assert.Equal(t, 1, *st.Indicadores[0].EntradaID)

	assert.NotNil(t, st.Indicadores[1].Checkbox)
	assert.False(t, *st.Indicadores[1].Checkbox)
	assert.NotNil(t, st.Indicadores[2].Criteria)

	require.Len(t, st.Salidas, 1)
	assert.Equal(t, entity.OutputValue{ID: 1, Value: 0}, st.Salidas[0])
}

func TestExecutionAnswer_CloneEsIndependiente(t *testing.T) {
	ans := entity.NewExecutionAnswer(mezcla())
	v := 12.5
	ans.Etapas[0].Entradas[0].Value = &v

	cp := ans.Clone()
	*cp.Etapas[0].Entradas[0].Value = 99
	*cp.Etapas[0].Indicadores[0].Range = "1-2"

	assert.Equal(t, 12.5, *ans.Etapas[0].Entradas[0].Value)
	assert.Equal(t, "", *ans.Etapas[0].Indicadores[0].Range)
}

func TestSelection_ToggleEIDsOrdenados(t *testing.T) {
	s := entity.NewSelection(5, 3, 5)
	s.Toggle(1)
	s.Toggle(3)

	assert.True(t, s.Has(1))
	assert.False(t, s.Has(3))
	assert.Equal(t, []int{1, 5}, s.IDs())
}
