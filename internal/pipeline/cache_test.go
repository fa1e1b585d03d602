package pipeline

import (
	"context"
	"testing"

	"github.com/shubhh2077/Ledger-Of-Legends/internal/config"
)

func TestResultCache_ReusesResults(t *testing.T) {
	cache := NewResultCache()
	raw := []byte("date,amount,description,type\n2024-01-10,100,coffee,Debit\n")

	first, err := cache.Process(context.Background(), raw, FormatCSV, config.Default())
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	second, err := cache.Process(context.Background(), raw, FormatCSV, config.Default())
	if err != nil {
		t.Fatalf("cached Process failed: %v", err)
	}
	if first != second {
		t.Error("expected the identical cached result on re-processing")
	}
}

func TestCacheKey(t *testing.T) {
	raw := []byte("date,amount\n2024-01-10,100\n")

	if CacheKey(raw, FormatCSV) != CacheKey(raw, FormatCSV) {
		t.Error("cache key is not deterministic")
	}
	if CacheKey(raw, FormatCSV) == CacheKey(raw, FormatHTML) {
		t.Error("the declared format is part of the input identity")
	}
	if CacheKey(raw, FormatCSV) == CacheKey([]byte("other"), FormatCSV) {
		t.Error("different bytes must have different keys")
	}
}

func TestResultCache_ErrorsAreNotCached(t *testing.T) {
	cache := NewResultCache()
	raw := []byte("name,value\nAlice,100\n") // missing date column

	if _, err := cache.Process(context.Background(), raw, FormatCSV, config.Default()); err == nil {
		t.Fatal("expected a schema error")
	}
	if _, ok := cache.Get(CacheKey(raw, FormatCSV)); ok {
		t.Error("failed runs must not leave cache entries")
	}
}
