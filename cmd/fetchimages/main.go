// Command fetchimages backfills product image URLs from the Unsplash
// search API. One-shot offline utility; run it by hand, not in the
// request path.
package main

import (
	"context"
	"os"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/external/unsplash"
	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/config"
	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/db"
	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/repository"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatal(err)
	}

	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()

	client, err := unsplash.NewClient(cfg.UnsplashKey)
	if err != nil {
		logger.Fatal(err)
	}

	productRepo := repository.NewProductRepository(pool)

	products, err := productRepo.ListMissingImages(ctx)
	if err != nil {
		logger.Fatal(err)
	}
	if len(products) == 0 {
		logger.Info("no products without images")
		return
	}

	for _, p := range products {
		imageURL, err := client.FirstImageURL(ctx, p.Name)
		if err != nil {
			logger.WithError(err).WithField("productid", p.ProductID).Warn("image search failed")
			continue
		}
		if imageURL == "" {
			logger.WithField("product", p.Name).Info("no image found")
			continue
		}
		if err := productRepo.SetImage(ctx, p.ProductID, imageURL); err != nil {
			logger.WithError(err).WithField("productid", p.ProductID).Warn("image update failed")
			continue
		}
		logger.WithField("productid", p.ProductID).Info("updated image")
	}
}
