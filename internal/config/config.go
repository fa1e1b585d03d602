package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// CategoryRule maps a spending category to the keyword substrings that select
// it. Rule order is semantically significant: the categorizer assigns the
// first category whose keyword list matches, so the slice must keep its
// declaration order.
type CategoryRule struct {
	Name     string
	Keywords []string
}

// Config carries every tunable the analysis core consumes. It is passed into
// constructors explicitly; there is no process-wide mutable default.
type Config struct {
	CurrencySymbol string

	// Categories in first-match-wins order.
	Categories []CategoryRule

	// BucketBreakpoints are the upper edges of the Small/Medium/Large/
	// Very Large amount bands; anything above the last edge is Huge.
	BucketBreakpoints []float64

	// MonthlyBudget is the average-monthly-spending alert threshold.
	MonthlyBudget float64

	RollingShort int // short trailing-mean window, in transactions
	RollingLong  int // long trailing-mean window, in transactions

	// FingerprintLen is how many description characters feed the
	// duplicate fingerprint.
	FingerprintLen int

	// StaleAfterDays flags transactions older than this during validation.
	StaleAfterDays int

	MaxFileSize int64
	LogLevel    string
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		CurrencySymbol: "₹",
		Categories: []CategoryRule{
			{Name: "Food & Dining", Keywords: []string{"restaurant", "food", "meal", "dining", "cafe", "pizza", "burger", "swiggy", "zomato", "dominos"}},
			{Name: "Transportation", Keywords: []string{"uber", "ola", "metro", "bus", "fuel", "petrol", "diesel", "parking", "toll", "taxi", "ride"}},
			{Name: "Shopping", Keywords: []string{"amazon", "flipkart", "myntra", "shop", "store", "mall", "clothing", "electronics", "online"}},
			{Name: "Entertainment", Keywords: []string{"movie", "netflix", "prime", "hotstar", "game", "concert", "theatre", "cinema", "streaming"}},
			{Name: "Healthcare", Keywords: []string{"medical", "pharmacy", "doctor", "hospital", "medicine", "health", "clinic", "dental"}},
			{Name: "Utilities", Keywords: []string{"electricity", "water", "gas", "internet", "mobile", "recharge", "bill", "utility"}},
			{Name: "Education", Keywords: []string{"course", "book", "tuition", "college", "university", "education", "training", "learning"}},
			{Name: "Investment", Keywords: []string{"mutual", "fund", "stock", "investment", "sip", "equity", "portfolio", "trading"}},
			{Name: "Travel", Keywords: []string{"hotel", "flight", "booking", "travel", "vacation", "trip", "airline", "accommodation"}},
			{Name: "Personal Care", Keywords: []string{"salon", "spa", "beauty", "gym", "fitness", "wellness", "cosmetics", "personal"}},
		},
		BucketBreakpoints: []float64{1000, 5000, 10000, 50000},
		MonthlyBudget:     50000,
		RollingShort:      7,
		RollingLong:       30,
		FingerprintLen:    50,
		StaleAfterDays:    3650,
		MaxFileSize:       50 * 1024 * 1024,
		LogLevel:          "info",
	}
}

// Load returns the default configuration with environment overrides applied.
// A .env file is honoured when present but is optional.
func Load() (Config, error) {
	for _, envFile := range []string{".env", "../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	cfg := Default()
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	if v := os.Getenv("MONTHLY_BUDGET"); v != "" {
		budget, err := strconv.ParseFloat(v, 64)
		if err == nil && budget > 0 {
			cfg.MonthlyBudget = budget
		}
	}
	if v := os.Getenv("MAX_FILE_SIZE"); v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err == nil && size > 0 {
			cfg.MaxFileSize = size
		}
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
