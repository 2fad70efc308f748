package main

import (
	"log"
	"time"

	"freshmart_back_end/internal/auth"
	"freshmart_back_end/internal/config"
	"freshmart_back_end/internal/notify"
	"freshmart_back_end/internal/routes"
	"freshmart_back_end/internal/store"
	"freshmart_back_end/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	hub := notify.NewHub()
	s := store.New(hub)
	users := auth.NewRegistry()

	if utils.MailEnabled() {
		log.Println("✅ Envoi d'emails activé (SMTP configuré)")
	} else {
		log.Println("⚠️ SMTP non configuré — les confirmations de commande ne partiront que dans le fil de notifications")
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, s, hub, users)

	port := config.Port()
	log.Println("🚀 Serveur FreshMart lancé sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Impossible de démarrer le serveur :", err)
	}
}
