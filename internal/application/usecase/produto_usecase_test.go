package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/controle-estoque/estoque-api/internal/application/dto"
	"github.com/controle-estoque/estoque-api/internal/application/estoque"
	"github.com/controle-estoque/estoque-api/internal/application/usecase"
	"github.com/controle-estoque/estoque-api/internal/domain"
	"github.com/controle-estoque/estoque-api/internal/domain/entity"
	"github.com/controle-estoque/estoque-api/internal/testutil"
)

func novoUseCase(store *testutil.MemStore) *usecase.ProdutoUseCase {
	estoqueUC := estoque.NewRegistrarMovimentacaoUseCase(store, store.MovimentacaoRepo())
	return usecase.NewProdutoUseCase(store.ProdutoRepo(), store, estoqueUC)
}

func criarRequest(nome string, quantidade int64) dto.CriarProdutoRequest {
	return dto.CriarProdutoRequest{
		Nome:             nome,
		Categoria:        "Alimentos",
		UnidadeMedida:    entity.UnidadeMedidaKg,
		QuantidadeAtual:  decimal.NewFromInt(quantidade),
		QuantidadeMinima: decimal.NewFromInt(5),
		PrecoCompra:      decimal.NewFromInt(4),
		PrecoVenda:       decimal.NewFromInt(6),
	}
}

// Criar um produto com saldo inicial > 0 sintetiza exatamente uma movimentação
// de abertura: entrada, motivo "inicial", anterior = 0 e nova = saldo declarado.
func TestCriarProduto_SintetizaMovimentacaoInicial(t *testing.T) {
	store := testutil.NewMemStore()
	uc := novoUseCase(store)

	produto, err := uc.Criar(context.Background(), criarRequest("Arroz", 10))
	require.NoError(t, err)
	require.NotEmpty(t, produto.ID)
	assert.True(t, produto.Ativo)

	movs := store.Movimentacoes()
	require.Len(t, movs, 1)
	mov := movs[0]
	assert.Equal(t, produto.ID, mov.ProdutoID)
	assert.Equal(t, entity.TipoEntrada, mov.Tipo)
	assert.Equal(t, entity.MotivoInicial, mov.Motivo)
	assert.True(t, mov.QuantidadeAnterior.IsZero())
	assert.True(t, mov.QuantidadeNova.Equal(decimal.NewFromInt(10)))
	assert.True(t, mov.PrecoUnitario.Equal(produto.PrecoCompra), "a abertura usa o preço de compra")
	assert.Equal(t, entity.UsuarioSistema, mov.Usuario)
}

func TestCriarProduto_SemSaldoInicialNaoGeraMovimentacao(t *testing.T) {
	store := testutil.NewMemStore()
	uc := novoUseCase(store)

	_, err := uc.Criar(context.Background(), criarRequest("Arroz", 0))
	require.NoError(t, err)
	assert.Empty(t, store.Movimentacoes())
}

func TestCriarProduto_NomeDuplicadoEntreAtivos(t *testing.T) {
	store := testutil.NewMemStore()
	uc := novoUseCase(store)

	_, err := uc.Criar(context.Background(), criarRequest("Arroz", 0))
	require.NoError(t, err)

	_, err = uc.Criar(context.Background(), criarRequest("Arroz", 0))
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

// Desativar libera o nome para um produto novo.
func TestCriarProduto_NomeDeInativoPodeSerReusado(t *testing.T) {
	store := testutil.NewMemStore()
	uc := novoUseCase(store)

	antigo, err := uc.Criar(context.Background(), criarRequest("Arroz", 0))
	require.NoError(t, err)
	require.NoError(t, uc.Desativar(antigo.ID))

	_, err = uc.Criar(context.Background(), criarRequest("Arroz", 0))
	assert.NoError(t, err)
}

func TestCriarProduto_EntradaInvalida(t *testing.T) {
	store := testutil.NewMemStore()
	uc := novoUseCase(store)

	semNome := criarRequest("", 0)
	_, err := uc.Criar(context.Background(), semNome)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	unidadeDesconhecida := criarRequest("Arroz", 0)
	unidadeDesconhecida.UnidadeMedida = "tonelada"
	_, err = uc.Criar(context.Background(), unidadeDesconhecida)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	saldoNegativo := criarRequest("Arroz", -1)
	_, err = uc.Criar(context.Background(), saldoNegativo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Round-trip: criar e buscar por ID devolve os mesmos campos.
func TestObterProduto_RoundTrip(t *testing.T) {
	store := testutil.NewMemStore()
	uc := novoUseCase(store)

	codigo := "7891000100103"
	in := criarRequest("Arroz", 10)
	in.CodigoBarras = &codigo
	criado, err := uc.Criar(context.Background(), in)
	require.NoError(t, err)

	obtido, err := uc.Obter(criado.ID)
	require.NoError(t, err)
	assert.Equal(t, criado.ID, obtido.ID)
	assert.Equal(t, criado.Nome, obtido.Nome)
	assert.Equal(t, criado.Categoria, obtido.Categoria)
	assert.Equal(t, criado.UnidadeMedida, obtido.UnidadeMedida)
	assert.Equal(t, criado.CodigoBarras, obtido.CodigoBarras)
	assert.True(t, criado.QuantidadeAtual.Equal(obtido.QuantidadeAtual))
	assert.True(t, criado.QuantidadeMinima.Equal(obtido.QuantidadeMinima))
}

func TestObterProduto_Inexistente(t *testing.T) {
	store := testutil.NewMemStore()
	uc := novoUseCase(store)

	_, err := uc.Obter(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Atualização parcial: só os campos enviados mudam; quantidade nunca muda.
func TestAtualizarProduto_Parcial(t *testing.T) {
	store := testutil.NewMemStore()
	uc := novoUseCase(store)

	criado, err := uc.Criar(context.Background(), criarRequest("Arroz", 10))
	require.NoError(t, err)

	novaMinima := decimal.NewFromInt(8)
	atualizado, err := uc.Atualizar(criado.ID, dto.AtualizarProdutoRequest{QuantidadeMinima: &novaMinima})
	require.NoError(t, err)

	assert.True(t, atualizado.QuantidadeMinima.Equal(novaMinima))
	assert.Equal(t, criado.Nome, atualizado.Nome, "campo ausente fica inalterado")
	assert.Equal(t, criado.Categoria, atualizado.Categoria)
	assert.True(t, atualizado.QuantidadeAtual.Equal(criado.QuantidadeAtual), "quantidade não é editável por update")
	assert.True(t, atualizado.UpdatedAt.After(criado.UpdatedAt) || atualizado.UpdatedAt.Equal(criado.UpdatedAt))
}

func TestAtualizarProduto_Inexistente(t *testing.T) {
	store := testutil.NewMemStore()
	uc := novoUseCase(store)

	nome := "Feijão"
	_, err := uc.Atualizar(uuid.New().String(), dto.AtualizarProdutoRequest{Nome: &nome})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Desativar tira o produto da listagem padrão, mas Obter ainda o devolve.
func TestDesativarProduto_SoftDelete(t *testing.T) {
	store := testutil.NewMemStore()
	uc := novoUseCase(store)

	criado, err := uc.Criar(context.Background(), criarRequest("Arroz", 10))
	require.NoError(t, err)

	require.NoError(t, uc.Desativar(criado.ID))
	// idempotente em efeito
	require.NoError(t, uc.Desativar(criado.ID))

	ativos, err := uc.Listar("", "", true)
	require.NoError(t, err)
	assert.Empty(t, ativos)

	todos, err := uc.Listar("", "", false)
	require.NoError(t, err)
	assert.Len(t, todos, 1)

	obtido, err := uc.Obter(criado.ID)
	require.NoError(t, err)
	assert.False(t, obtido.Ativo)
	assert.True(t, obtido.QuantidadeAtual.Equal(criado.QuantidadeAtual), "desativar não mexe no saldo")
}

func TestDesativarProduto_Inexistente(t *testing.T) {
	store := testutil.NewMemStore()
	uc := novoUseCase(store)

	assert.ErrorIs(t, uc.Desativar(uuid.New().String()), domain.ErrNotFound)
}

func TestListarProdutos_FiltroCategoriaEBusca(t *testing.T) {
	store := testutil.NewMemStore()
	uc := novoUseCase(store)

	codigo := "7891000100103"
	arroz := criarRequest("Arroz Integral", 10)
	arroz.CodigoBarras = &codigo
	_, err := uc.Criar(context.Background(), arroz)
	require.NoError(t, err)

	detergente := criarRequest("Detergente", 3)
	detergente.Categoria = "Limpeza"
	_, err = uc.Criar(context.Background(), detergente)
	require.NoError(t, err)

	limpeza, err := uc.Listar("Limpeza", "", true)
	require.NoError(t, err)
	require.Len(t, limpeza, 1)
	assert.Equal(t, "Detergente", limpeza[0].Nome)

	// busca case-insensitive por substring do nome
	porNome, err := uc.Listar("", "arroz int", true)
	require.NoError(t, err)
	require.Len(t, porNome, 1)
	assert.Equal(t, "Arroz Integral", porNome[0].Nome)

	// busca também casa com o código de barras
	porCodigo, err := uc.Listar("", "8910001", true)
	require.NoError(t, err)
	require.Len(t, porCodigo, 1)
	assert.Equal(t, "Arroz Integral", porCodigo[0].Nome)

	nenhum, err := uc.Listar("", "sabão", true)
	require.NoError(t, err)
	assert.Empty(t, nenhum)
}
