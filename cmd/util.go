package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"rigvalue/api"
	"rigvalue/internal/app"
	"rigvalue/internal/repository"
	"rigvalue/internal/service"
	"rigvalue/internal/util"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	listingRepository := repository.NewListingRepository(dbConn)
	componentRepository := repository.NewComponentRepository(dbConn)
	valuationRuleRepository := repository.NewValuationRuleRepository(dbConn)
	scoringProfileRepository := repository.NewScoringProfileRepository(dbConn)
	valuationBreakdownRepository := repository.NewValuationBreakdownRepository(dbConn)
	revaluationJobRepository := repository.NewRevaluationJobRepository(dbConn)

	valuationService := service.NewValuationService(
		dbConn,
		listingRepository,
		componentRepository,
		valuationRuleRepository,
		scoringProfileRepository,
		valuationBreakdownRepository,
	)

	revaluerHandler := app.RevaluerHandler{
		Db:                       dbConn,
		ValuationService:         valuationService,
		ListingRepository:        listingRepository,
		RevaluationJobRepository: revaluationJobRepository,
	}

	return &api.ApiHandler{
		Db:                           dbConn,
		ValuationService:             valuationService,
		RevaluerHandler:              revaluerHandler,
		ListingRepository:            listingRepository,
		ComponentRepository:          componentRepository,
		ValuationBreakdownRepository: valuationBreakdownRepository,
	}, nil
}
