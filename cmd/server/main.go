package main

import (
	"log"

	"github.com/Kanahcian/kanahcian-backend/config"
	"github.com/Kanahcian/kanahcian-backend/internal/account"
	"github.com/Kanahcian/kanahcian-backend/internal/database"
	"github.com/Kanahcian/kanahcian-backend/internal/health"
	"github.com/Kanahcian/kanahcian-backend/internal/location"
	"github.com/Kanahcian/kanahcian-backend/internal/record"
	"github.com/Kanahcian/kanahcian-backend/internal/villager"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)

	if err := db.AutoMigrate(
		&location.Location{},
		&villager.Villager{},
		&villager.RelationshipType{},
		&villager.VillagerRelationship{},
		&account.Account{},
		&record.Record{},
		&record.StudentAtRecord{},
		&record.VillagerAtRecord{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	health.RegisterRoutes(r, db)

	locationService := &location.LocationService{DB: db}
	location.RegisterRoutes(r, locationService)

	villagerService := &villager.VillagerService{DB: db}
	villager.RegisterRoutes(r, villagerService)

	recordService := &record.RecordService{DB: db}
	record.RegisterRoutes(r, recordService)

	accountService := &account.AccountService{DB: db}
	account.RegisterRoutes(r, accountService)

	log.Printf("Starting server on 0.0.0.0:%s ...", cfg.Port)
	log.Fatal(r.Run("0.0.0.0:" + cfg.Port))
}
