package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// WhatsAppPhone es el número de pedidos, sin el "+"
	WhatsAppPhone string
	// Currency es el sufijo de moneda para los montos
	Currency string
	// PriceMax es el tope del slider de precios de la vista
	PriceMax int
}

func LoadConfig() *Config {
	// Solo cargar .env en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		err := godotenv.Load()
		if err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		} else {
			log.Println("✅ .env file loaded successfully")
		}
	} else {
		log.Println("🌐 Using system environment variables")
	}

	return &Config{
		WhatsAppPhone: getEnv("WHATSAPP_PHONE", "33123456789"),
		Currency:      getEnv("CURRENCY", "fcfa"),
		PriceMax:      getEnvInt("PRICE_MAX", 5000),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Println("⚠️ Invalid value for", key, "- using fallback:", err)
		return fallback
	}
	return n
}
