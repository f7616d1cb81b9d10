package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-estoque/estoque-api/internal/application/dto"
	"github.com/controle-estoque/estoque-api/internal/application/estoque"
	"github.com/controle-estoque/estoque-api/internal/domain"
	"github.com/controle-estoque/estoque-api/internal/domain/entity"
	"github.com/controle-estoque/estoque-api/internal/domain/repository"
)

// ProdutoUseCase casos de uso do catálogo. Quantidade não é editável por aqui:
// após a criação, só o motor de movimentações escreve quantidade_atual.
type ProdutoUseCase struct {
	repo      repository.ProdutoRepository
	txRunner  estoque.TxRunner
	estoqueUC *estoque.RegistrarMovimentacaoUseCase
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(
	repo repository.ProdutoRepository,
	txRunner estoque.TxRunner,
	estoqueUC *estoque.RegistrarMovimentacaoUseCase,
) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo, txRunner: txRunner, estoqueUC: estoqueUC}
}

// Criar cria um produto novo. Se o saldo inicial for maior que zero, grava na
// mesma transação a movimentação de abertura (motivo "inicial", anterior = 0),
// mantendo o livro consistente com o saldo declarado.
func (uc *ProdutoUseCase) Criar(ctx context.Context, in dto.CriarProdutoRequest) (*entity.Produto, error) {
	if in.Nome == "" || in.Categoria == "" || !entity.UnidadeMedidaValida(in.UnidadeMedida) {
		return nil, domain.ErrInvalidInput
	}
	if in.QuantidadeAtual.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetAtivoByNome(in.Nome)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateName
	}

	codigoBarras := ""
	if in.CodigoBarras != nil {
		codigoBarras = *in.CodigoBarras
	}
	now := time.Now().UTC()
	produto := &entity.Produto{
		ID:               uuid.New().String(),
		Nome:             in.Nome,
		Categoria:        in.Categoria,
		UnidadeMedida:    in.UnidadeMedida,
		QuantidadeAtual:  in.QuantidadeAtual,
		QuantidadeMinima: in.QuantidadeMinima,
		PrecoCompra:      in.PrecoCompra,
		PrecoVenda:       in.PrecoVenda,
		CodigoBarras:     codigoBarras,
		Ativo:            true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if !produto.QuantidadeAtual.GreaterThan(decimal.Zero) {
		if err := uc.repo.Create(produto); err != nil {
			return nil, err
		}
		return produto, nil
	}

	// Produto e movimentação de abertura na mesma transação.
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		if err := produtoRepo.Create(produto); err != nil {
			return err
		}
		return uc.estoqueUC.RegistrarInicialInTx(movRepo, produto, now)
	})
	if err != nil {
		return nil, err
	}
	return produto, nil
}

// Obter busca um produto por ID, ativo ou não.
func (uc *ProdutoUseCase) Obter(id string) (*entity.Produto, error) {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}
	return produto, nil
}

// Listar devolve os produtos que casam com os filtros. Categoria é comparação
// exata no banco; busca é substring case-insensitive sobre nome e código de
// barras, aplicada aqui (código ausente conta como string vazia).
func (uc *ProdutoUseCase) Listar(categoria, busca string, apenasAtivos bool) ([]*entity.Produto, error) {
	list, err := uc.repo.List(repository.ProdutoFilter{
		Categoria:    categoria,
		ApenasAtivos: apenasAtivos,
	})
	if err != nil {
		return nil, err
	}
	if busca == "" {
		return list, nil
	}
	buscaLower := strings.ToLower(busca)
	filtrados := make([]*entity.Produto, 0, len(list))
	for _, p := range list {
		if strings.Contains(strings.ToLower(p.Nome), buscaLower) ||
			strings.Contains(strings.ToLower(p.CodigoBarras), buscaLower) {
			filtrados = append(filtrados, p)
		}
	}
	return filtrados, nil
}

// Atualizar aplica uma atualização parcial: campo ausente fica inalterado.
// Quantidade não está entre os campos atualizáveis.
func (uc *ProdutoUseCase) Atualizar(id string, in dto.AtualizarProdutoRequest) (*entity.Produto, error) {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nome != nil {
		produto.Nome = *in.Nome
	}
	if in.Categoria != nil {
		produto.Categoria = *in.Categoria
	}
	if in.UnidadeMedida != nil {
		if !entity.UnidadeMedidaValida(*in.UnidadeMedida) {
			return nil, domain.ErrInvalidInput
		}
		produto.UnidadeMedida = *in.UnidadeMedida
	}
	if in.QuantidadeMinima != nil {
		produto.QuantidadeMinima = *in.QuantidadeMinima
	}
	if in.PrecoCompra != nil {
		produto.PrecoCompra = *in.PrecoCompra
	}
	if in.PrecoVenda != nil {
		produto.PrecoVenda = *in.PrecoVenda
	}
	if in.CodigoBarras != nil {
		produto.CodigoBarras = *in.CodigoBarras
	}
	if in.Ativo != nil {
		produto.Ativo = *in.Ativo
	}
	produto.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(produto); err != nil {
		return nil, err
	}
	return produto, nil
}

// Desativar marca o produto como inativo (soft delete). O saldo e os demais
// campos ficam como estão; desativar duas vezes deixa o mesmo estado.
func (uc *ProdutoUseCase) Desativar(id string) error {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if produto == nil {
		return domain.ErrNotFound
	}
	produto.Ativo = false
	return uc.repo.Update(produto)
}
