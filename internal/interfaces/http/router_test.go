package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/controle-estoque/estoque-api/internal/application/analytics"
	"github.com/controle-estoque/estoque-api/internal/application/estoque"
	"github.com/controle-estoque/estoque-api/internal/application/usecase"
	apihttp "github.com/controle-estoque/estoque-api/internal/interfaces/http"
	"github.com/controle-estoque/estoque-api/internal/testutil"
)

func novaApp() *fiber.App {
	store := testutil.NewMemStore()
	estoqueUC := estoque.NewRegistrarMovimentacaoUseCase(store, store.MovimentacaoRepo())
	app := fiber.New()
	apihttp.Router(app, apihttp.RouterDeps{
		ProdutoUC:   usecase.NewProdutoUseCase(store.ProdutoRepo(), store, estoqueUC),
		EstoqueUC:   estoqueUC,
		DashboardUC: analytics.NewDashboardUseCase(store.ProdutoRepo(), store.MovimentacaoRepo()),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*stdhttp.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func criarProdutoHTTP(t *testing.T, app *fiber.App, nome string, quantidade float64) string {
	t.Helper()
	resp, body := doJSON(t, app, stdhttp.MethodPost, "/api/produtos", map[string]any{
		"nome":              nome,
		"categoria":         "Alimentos",
		"unidade_medida":    "kg",
		"quantidade_atual":  quantidade,
		"quantidade_minima": 5,
		"preco_compra":      4.5,
		"preco_venda":       6.9,
	})
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	id, ok := body["id"].(string)
	require.True(t, ok, "resposta traz o id gerado")
	return id
}

func TestLiveness(t *testing.T) {
	app := novaApp()

	resp, body := doJSON(t, app, stdhttp.MethodGet, "/api/", nil)
	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "Sistema de Controle de Estoque - API", body["message"])
}

func TestCriarProduto_HTTP(t *testing.T) {
	app := novaApp()

	resp, body := doJSON(t, app, stdhttp.MethodPost, "/api/produtos", map[string]any{
		"nome":              "Arroz",
		"categoria":         "Alimentos",
		"unidade_medida":    "kg",
		"quantidade_atual":  10,
		"quantidade_minima": 5,
		"preco_compra":      4.5,
		"preco_venda":       6.9,
	})
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "Arroz", body["nome"])
	assert.Equal(t, true, body["ativo"])
	// decimais serializam como número JSON, não string
	assert.Equal(t, float64(10), body["quantidade_atual"])
	assert.Equal(t, 4.5, body["preco_compra"])
	assert.NotEmpty(t, body["id"])
	assert.NotEmpty(t, body["created_at"])
}

func TestCriarProduto_NomeDuplicado_HTTP(t *testing.T) {
	app := novaApp()
	criarProdutoHTTP(t, app, "Arroz", 10)

	resp, body := doJSON(t, app, stdhttp.MethodPost, "/api/produtos", map[string]any{
		"nome":              "Arroz",
		"categoria":         "Alimentos",
		"unidade_medida":    "kg",
		"quantidade_atual":  0,
		"quantidade_minima": 5,
	})
	assert.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Produto com este nome já existe", body["detail"])
}

func TestCriarProduto_CorpoInvalido_HTTP(t *testing.T) {
	app := novaApp()

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/produtos", bytes.NewBufferString("{nao é json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)
}

func TestObterProduto_Inexistente_HTTP(t *testing.T) {
	app := novaApp()

	resp, body := doJSON(t, app, stdhttp.MethodGet, "/api/produtos/00000000-0000-0000-0000-000000000000", nil)
	assert.Equal(t, stdhttp.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Produto não encontrado", body["detail"])
}

func TestAtualizarProduto_HTTP(t *testing.T) {
	app := novaApp()
	id := criarProdutoHTTP(t, app, "Arroz", 10)

	resp, body := doJSON(t, app, stdhttp.MethodPut, "/api/produtos/"+id, map[string]any{
		"categoria": "Grãos",
	})
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "Grãos", body["categoria"])
	assert.Equal(t, "Arroz", body["nome"], "campo ausente fica inalterado")
	assert.Equal(t, float64(10), body["quantidade_atual"], "quantidade não muda por PUT")
}

func TestDesativarProduto_HTTP(t *testing.T) {
	app := novaApp()
	id := criarProdutoHTTP(t, app, "Arroz", 10)

	resp, body := doJSON(t, app, stdhttp.MethodDelete, "/api/produtos/"+id, nil)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "Produto desativado com sucesso", body["message"])

	// some da listagem padrão
	req := httptest.NewRequest(stdhttp.MethodGet, "/api/produtos", nil)
	listResp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(listResp.Body)
	require.NoError(t, err)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Empty(t, list)

	// mas GET por id ainda devolve, com ativo=false
	resp, body = doJSON(t, app, stdhttp.MethodGet, "/api/produtos/"+id, nil)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["ativo"])
}

func TestRegistrarMovimentacao_HTTP(t *testing.T) {
	app := novaApp()
	id := criarProdutoHTTP(t, app, "Arroz", 10)

	resp, body := doJSON(t, app, stdhttp.MethodPost, "/api/movimentacoes", map[string]any{
		"produto_id": id,
		"tipo":       "saida",
		"motivo":     "venda",
		"quantidade": 3,
	})
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(10), body["quantidade_anterior"])
	assert.Equal(t, float64(7), body["quantidade_nova"])
	assert.Equal(t, "Sistema", body["usuario"])

	// o saldo do produto reflete a saída
	resp, body = doJSON(t, app, stdhttp.MethodGet, "/api/produtos/"+id, nil)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(7), body["quantidade_atual"])
}

func TestRegistrarMovimentacao_EstoqueInsuficiente_HTTP(t *testing.T) {
	app := novaApp()
	id := criarProdutoHTTP(t, app, "Arroz", 7)

	resp, body := doJSON(t, app, stdhttp.MethodPost, "/api/movimentacoes", map[string]any{
		"produto_id": id,
		"tipo":       "saida",
		"motivo":     "venda",
		"quantidade": 8,
	})
	assert.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Estoque insuficiente. Disponível: 7", body["detail"])
}

func TestRegistrarMovimentacao_ProdutoInexistente_HTTP(t *testing.T) {
	app := novaApp()

	resp, body := doJSON(t, app, stdhttp.MethodPost, "/api/movimentacoes", map[string]any{
		"produto_id": "00000000-0000-0000-0000-000000000000",
		"tipo":       "entrada",
		"motivo":     "compra",
		"quantidade": 1,
	})
	assert.Equal(t, stdhttp.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Produto não encontrado", body["detail"])
}

func TestListarMovimentacoes_HTTP(t *testing.T) {
	app := novaApp()
	id := criarProdutoHTTP(t, app, "Arroz", 10)
	criarProdutoHTTP(t, app, "Feijão", 20)

	for i := 0; i < 3; i++ {
		resp, _ := doJSON(t, app, stdhttp.MethodPost, "/api/movimentacoes", map[string]any{
			"produto_id": id,
			"tipo":       "saida",
			"motivo":     "venda",
			"quantidade": 1,
		})
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	}

	req := httptest.NewRequest(stdhttp.MethodGet, fmt.Sprintf("/api/movimentacoes?produto_id=%s&limit=2", id), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 2)
	// mais recente primeiro
	assert.Equal(t, float64(7), list[0]["quantidade_nova"])
	assert.Equal(t, float64(8), list[1]["quantidade_nova"])
}

func TestDashboard_HTTP(t *testing.T) {
	app := novaApp()
	criarProdutoHTTP(t, app, "Arroz", 10)
	criarProdutoHTTP(t, app, "Feijão", 0)

	resp, body := doJSON(t, app, stdhttp.MethodGet, "/api/dashboard", nil)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), body["total_produtos"])
	assert.Equal(t, float64(1), body["produtos_sem_estoque"])

	categorias, ok := body["categorias"].([]any)
	require.True(t, ok)
	require.Len(t, categorias, 1)
	cat := categorias[0].(map[string]any)
	assert.Equal(t, "Alimentos", cat["categoria"])
	assert.Equal(t, float64(2), cat["total"])
}

func TestListarCategorias_HTTP(t *testing.T) {
	app := novaApp()
	criarProdutoHTTP(t, app, "Arroz", 10)

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/categorias", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var categorias []string
	require.NoError(t, json.Unmarshal(raw, &categorias))
	assert.Equal(t, []string{"Alimentos"}, categorias)
}
