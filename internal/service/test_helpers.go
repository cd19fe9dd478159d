package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lgpd-forms/consent-form-api/internal/metrics"
	"github.com/lgpd-forms/consent-form-api/internal/models"
	"github.com/lgpd-forms/consent-form-api/internal/service/mocks"
)

// Reference instant shared by deterministic tests.
var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// promauto registers into the default registry, so the collectors are built
// once for the whole test binary.
var (
	testMetricsOnce sync.Once
	testMetrics     *metrics.Metrics
)

func sharedTestMetrics() *metrics.Metrics {
	testMetricsOnce.Do(func() {
		testMetrics = metrics.New()
	})
	return testMetrics
}

// TestSetup bundles the common collaborators of a TermoService under test.
type TestSetup struct {
	MockRepo     *mocks.MockTermoRepository
	MockFinder   *mocks.MockTitularFinder
	MockRenderer *mocks.MockDocumentRenderer
	MockAudit    *mocks.MockAuditSink
	Logger       *logrus.Logger
	Service      *TermoService
}

func NewTestSetup() *TestSetup {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	setup := &TestSetup{
		MockRepo:     &mocks.MockTermoRepository{},
		MockFinder:   &mocks.MockTitularFinder{},
		MockRenderer: &mocks.MockDocumentRenderer{},
		MockAudit:    &mocks.MockAuditSink{},
		Logger:       logger,
	}

	reconciler := NewTitularReconcilerWith(setup.MockFinder, fixedClock, logger)
	conteudo := NewConteudoBuilderWith(fixedClock)
	numeros := NewNumeroTermoGeneratorWith(fixedClock, rand.New(rand.NewSource(1)))

	setup.Service = NewTermoService(
		setup.MockRepo,
		reconciler,
		conteudo,
		numeros,
		setup.MockRenderer,
		setup.MockAudit,
		sharedTestMetrics(),
		"1.0",
		logger,
	)
	return setup
}

// NewValidCreateRequest builds a request that passes every validation gate.
func NewValidCreateRequest() *models.TermoAceiteCreateRequest {
	return &models.TermoAceiteCreateRequest{
		TipoCadastro: models.TipoCadastroNovo,
		Titular: models.TitularInput{
			Nome:           "Maria da Silva",
			CPF:            "529.982.247-25",
			DataNascimento: time.Date(1990, time.March, 10, 0, 0, 0, 0, time.UTC),
			EstadoCivil:    "solteira",
			Naturalidade:   "Boa Vista-RR",
			Email:          "maria.silva@example.com",
			Qualificacao:   models.QualificacaoTitular,
		},
		AceiteConfirmado: true,
	}
}

func strPtr(s string) *string {
	return &s
}
