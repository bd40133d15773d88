package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"sus-vacinacao-server/internal/config"
	"sus-vacinacao-server/internal/handlers"
	"sus-vacinacao-server/internal/middleware"
	"sus-vacinacao-server/internal/repository"
	"sus-vacinacao-server/internal/services"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, logger zerolog.Logger) {
	// Repositories
	pacienteRepo := repository.NewPacienteRepository(db)
	vacinaRepo := repository.NewVacinaRepository(db)
	estabelecimentoRepo := repository.NewEstabelecimentoRepository(db)
	funcionarioRepo := repository.NewFuncionarioRepository(db)
	carteiraRepo := repository.NewCarteiraRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)

	// Core vaccination workflow
	vacinacaoService := services.NewVacinacaoService(
		pacienteRepo, vacinaRepo, funcionarioRepo, estabelecimentoRepo, carteiraRepo, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(usuarioRepo, cfg, logger)
	vacinaHandler := handlers.NewVacinaHandler(vacinaRepo, vacinacaoService)
	carteiraHandler := handlers.NewCarteiraHandler(vacinacaoService)
	estabelecimentoHandler := handlers.NewEstabelecimentoHandler(estabelecimentoRepo, vacinacaoService)
	pacienteHandler := handlers.NewPacienteHandler(pacienteRepo)
	funcionarioHandler := handlers.NewFuncionarioHandler(funcionarioRepo, estabelecimentoRepo)
	prontuarioHandler := handlers.NewProntuarioHandler()

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		public.POST("/login/access-token", authHandler.Login)
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		vacinaRoutes := private.Group("/vacinas")
		{
			vacinaRoutes.GET("/", vacinaHandler.ListarVacinas)
			vacinaRoutes.GET("/:id", vacinaHandler.ObterVacina)
			vacinaRoutes.POST("/", vacinaHandler.CriarVacina)
			vacinaRoutes.PUT("/:id", vacinaHandler.AtualizarVacina)
			vacinaRoutes.DELETE("/:id", vacinaHandler.RemoverVacina)
		}

		carteiraRoutes := private.Group("/carteira")
		{
			carteiraRoutes.GET("/", carteiraHandler.ListarVacinacoes)
			carteiraRoutes.GET("/paciente/:id", carteiraHandler.CarteiraPaciente)
			carteiraRoutes.POST("/", carteiraHandler.RegistrarVacinacao)
		}

		estabelecimentoRoutes := private.Group("/estabelecimentos")
		{
			estabelecimentoRoutes.GET("/", estabelecimentoHandler.ListarEstabelecimentos)
			estabelecimentoRoutes.GET("/:id", estabelecimentoHandler.ObterEstabelecimento)
			estabelecimentoRoutes.POST("/", estabelecimentoHandler.CriarEstabelecimento)
			estabelecimentoRoutes.PUT("/:id", estabelecimentoHandler.AtualizarEstabelecimento)
			estabelecimentoRoutes.DELETE("/:id", estabelecimentoHandler.RemoverEstabelecimento)
			estabelecimentoRoutes.GET("/tipo/:tipo", estabelecimentoHandler.ListarEstabelecimentosPorTipo)
		}

		pacienteRoutes := private.Group("/pacientes")
		{
			pacienteRoutes.GET("/", pacienteHandler.ListarPacientes)
			pacienteRoutes.GET("/:id", pacienteHandler.ObterPaciente)
			pacienteRoutes.POST("/", pacienteHandler.CriarPaciente)
			pacienteRoutes.PUT("/:id", pacienteHandler.AtualizarPaciente)
			pacienteRoutes.GET("/cpf/:cpf", pacienteHandler.ObterPacientePorCPF)
			pacienteRoutes.GET("/sus/:sus_numero", pacienteHandler.ObterPacientePorSUS)
		}

		funcionarioRoutes := private.Group("/funcionarios")
		{
			funcionarioRoutes.GET("/", funcionarioHandler.ListarFuncionarios)
			funcionarioRoutes.GET("/:id", funcionarioHandler.ObterFuncionario)
			funcionarioRoutes.POST("/", funcionarioHandler.CriarFuncionario)
			funcionarioRoutes.PUT("/:id", funcionarioHandler.AtualizarFuncionario)
		}

		prontuarioRoutes := private.Group("/prontuarios")
		{
			prontuarioRoutes.GET("/", prontuarioHandler.ListarProntuarios)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
