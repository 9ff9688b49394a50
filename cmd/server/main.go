package main

import (
	"log"
	"os"

	"investment_tracking/internal/app/router"
	accounthandler "investment_tracking/internal/feature/accounts/transport/handler"
	accountusecase "investment_tracking/internal/feature/accounts/usecase"
	brokerhandler "investment_tracking/internal/feature/brokers/transport/handler"
	brokerusecase "investment_tracking/internal/feature/brokers/usecase"
	transactionhandler "investment_tracking/internal/feature/transactions/transport/handler"
	transactionusecase "investment_tracking/internal/feature/transactions/usecase"
	platformdb "investment_tracking/internal/platform/db"
	"investment_tracking/internal/platform/persistence"
)

func main() {
	// db
	db := platformdb.OpenDB()

	// One unit of work per request comes out of this factory.
	uowFactory, err := persistence.NewUnitOfWorkFactory(db)
	if err != nil {
		log.Fatal(err)
	}

	// Usecase
	brokerUC := brokerusecase.NewBrokerUsecase(uowFactory)
	accountUC := accountusecase.NewAccountUsecase(uowFactory)
	transactionUC := transactionusecase.NewTransactionUsecase(uowFactory)

	// Handler
	brokerH := brokerhandler.NewBrokerHandler(brokerUC)
	accountH := accounthandler.NewAccountHandler(accountUC)
	transactionH := transactionhandler.NewTransactionHandler(transactionUC)

	r := router.NewRouter(brokerH, accountH, transactionH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
