package main

import (
	"log"
	"net/http"

	httpapi "github.com/antoniopolonijr/sao-joao-frango-assado-server/internal/api/http"
	"github.com/antoniopolonijr/sao-joao-frango-assado-server/internal/config"
	"github.com/antoniopolonijr/sao-joao-frango-assado-server/internal/service"
	"github.com/antoniopolonijr/sao-joao-frango-assado-server/internal/storage"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	settings := config.LoadSettings()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()
	cache := storage.NewRedisCache(rdb, settings.ContactTTL)

	writer := config.NewKafkaWriter("orders")
	defer writer.Close()
	publisher := storage.NewKafkaPublisher(writer)

	qr := service.DefaultQRGenerator{BaseURL: settings.BaseURL}
	orderSvc := service.NewOrderService(repo, publisher, qr, settings.OrdersPageSize)
	catalogSvc := service.NewCatalogService(repo)
	contactSvc := service.NewContactService(repo, cache)

	handler := httpapi.NewHandler(catalogSvc, orderSvc, contactSvc)

	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(settings.PublicDir)))

	withCORS := cors.Default().Handler(r)

	log.Println("Sao Joao server starting on port " + settings.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+settings.HTTPPort, withCORS))
}
