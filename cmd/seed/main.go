// Command seed creates a demo admin account and an open sample contest for
// local development.
package main

import (
	"log"

	"crease/internal/config"
	"crease/internal/models"
	"crease/internal/repositories"

	"github.com/shopspring/decimal"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	defer func() {
		if repositories.DB != nil {
			if sqlDB, err := repositories.DB.DB(); err == nil {
				sqlDB.Close()
			}
		}
	}()

	var existingAdmin models.Account
	result := repositories.DB.Where("role = ?", models.RoleAdmin).First(&existingAdmin)
	if result.Error == nil {
		log.Println("Admin account already exists")
		return
	}

	admin := models.Account{Role: models.RoleAdmin}
	if err := repositories.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin account: ", err)
	}

	contest := models.Contest{
		MatchRef: "demo-match",
		Name:     "Demo Mega Contest",
		EntryFee: decimal.NewFromInt(50),
		MaxTeams: 100,
		Active:   true,
		PrizeTiers: models.NewJSON(map[string]interface{}{
			"tiers": []map[string]interface{}{
				{"from_rank": 1, "to_rank": 1, "payout": 2000},
				{"from_rank": 2, "to_rank": 10, "payout": 250},
			},
		}),
	}
	if err := repositories.DB.Create(&contest).Error; err != nil {
		log.Fatal("Failed to create demo contest: ", err)
	}

	log.Println("Seed data created")
}
