package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnwrapListPlainArray(t *testing.T) {
	got, err := unwrapList[Client]([]byte(`[{"id":1,"nom":"Aina"},{"id":2,"nom":"Bema"}]`))
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Aina", got[0].Name)
}

func TestUnwrapListPageEnvelope(t *testing.T) {
	payload := `{"count":12,"next":"http://x/clients/?page=2","previous":null,"results":[{"id":3,"nom":"Citra"}]}`
	got, err := unwrapList[Client]([]byte(payload))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.EqualValues(t, 3, got[0].ID)
}

func TestUnwrapListEmptyAndInvalid(t *testing.T) {
	got, err := unwrapList[Client](nil)
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = unwrapList[Client]([]byte(`"neither array nor page"`))
	require.Error(t, err)
}

func TestAmountDecodesStringsAndNumbers(t *testing.T) {
	var doc struct {
		Price Amount `json:"prix_vente"`
		Total Amount `json:"total"`
		Empty Amount `json:"vide"`
	}
	payload := `{"prix_vente":"12500.00","total":98000,"vide":null}`
	require.NoError(t, json.Unmarshal([]byte(payload), &doc))

	require.Equal(t, Amount("12500.00"), doc.Price)
	require.Equal(t, Amount("98000"), doc.Total)
	require.Equal(t, Amount(""), doc.Empty)

	price, err := doc.Price.Float64()
	require.NoError(t, err)
	require.Equal(t, 12500.0, price)

	zero, err := doc.Empty.Float64()
	require.NoError(t, err)
	require.Zero(t, zero)

	_, err = Amount("12,5").Float64()
	require.Error(t, err)
}

func TestListAccountsParamsValues(t *testing.T) {
	active := true
	v := ListAccountsParams{
		Query:    "rina",
		Role:     "ADMIN",
		Active:   &active,
		Page:     2,
		PageSize: 50,
	}.values()

	require.Equal(t, "rina", v.Get("search"))
	require.Equal(t, "ADMIN", v.Get("role"))
	require.Equal(t, "true", v.Get("is_active"))
	require.Equal(t, "2", v.Get("page"))
	require.Equal(t, "50", v.Get("page_size"))

	require.Empty(t, ListAccountsParams{}.values())
}
