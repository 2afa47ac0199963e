// Command contactd receives portfolio contact-form submissions and keeps
// them in sqlite.
package main

import (
	"crypto/subtle"
	"flag"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/zam-dot/portfolio/contact"
)

func main() {
	addr := flag.String("addr", envOr("CONTACTD_ADDR", ":8080"), "Listen address")
	dsn := flag.String("db", envOr("CONTACTD_DB", "contact.db"), "sqlite database file")
	flag.Parse()

	store, err := OpenStore(*dsn)
	if err != nil {
		log.Fatal("Error:", err)
	}
	defer store.Close()

	adminPassword := os.Getenv("CONTACTD_ADMIN_PASSWORD")
	if adminPassword == "" {
		log.Println("CONTACTD_ADMIN_PASSWORD is not set, listing submissions is disabled")
	}

	log.Printf("Listening on %s, storing submissions in %s", *addr, *dsn)
	if err := newRouter(store, adminPassword).Run(*addr); err != nil {
		log.Fatal("Error running server:", err)
	}
}

func envOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// Middleware to check admin credentials. Any user name is accepted, only
// the password is compared.
func adminAuthMiddleware(password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, given, ok := c.Request.BasicAuth()
		if !ok || subtle.ConstantTimeCompare([]byte(given), []byte(password)) != 1 {
			log.Printf("Rejected admin request from %s", c.ClientIP())
			c.Header("WWW-Authenticate", `Basic realm="contactd"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// newRouter wires the public contact endpoint and, when adminPassword is
// set, the password protected listing of stored submissions.
func newRouter(store *Store, adminPassword string) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Submissions from the portfolio's contact form
	r.POST("/contact", func(c *gin.Context) {
		var sub contact.Submission
		if err := c.ShouldBindJSON(&sub); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}
		sub.Name = strings.TrimSpace(sub.Name)
		sub.Email = strings.TrimSpace(sub.Email)
		sub.Phone = strings.TrimSpace(sub.Phone)
		sub.Subject = strings.TrimSpace(sub.Subject)

		if errs := contact.Validate(sub); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission", "fields": errs})
			return
		}

		stored, err := store.Add(c.Request.Context(), sub)
		if err != nil {
			log.Printf("Error storing submission: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store submission"})
			return
		}
		c.JSON(http.StatusCreated, stored)
	})

	if adminPassword == "" {
		return r
	}

	// Stored submissions carry contact details, so reading them needs the
	// admin password
	adminGroup := r.Group("/contact")
	adminGroup.Use(adminAuthMiddleware(adminPassword))

	adminGroup.GET("", func(c *gin.Context) {
		submissions, err := store.List(c.Request.Context())
		if err != nil {
			log.Printf("Error listing submissions: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list submissions"})
			return
		}
		c.JSON(http.StatusOK, submissions)
	})

	return r
}
