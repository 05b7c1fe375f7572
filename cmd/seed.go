package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/franciscosanchezn/bistro-boss-api/internal/config"
	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
	"github.com/franciscosanchezn/bistro-boss-api/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample menu and reviews into an empty store",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.LoadConfig()
		if err != nil {
			return err
		}
		s, err := openStore(cmd.Context(), conf)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close(context.Background())
		return seedDatabase(cmd.Context(), s)
	},
}

var sampleMenu = []models.MenuItem{
	{Name: "Escalope de Veau", Category: "popular", Price: 14.5, Description: "Veal escalope with creamy mushroom sauce and roasted potatoes."},
	{Name: "Chicken and Walnut Salad", Category: "salad", Price: 9.8, Description: "Grilled chicken, walnuts, baby spinach and a honey mustard dressing."},
	{Name: "Roast Duck Breast", Category: "dessert", Price: 12.3, Description: "Duck breast with cherry glaze, served with a chocolate fondant."},
	{Name: "Fish Parmentier", Category: "soup", Price: 8.5, Description: "Smoked haddock and potato soup with chives."},
	{Name: "Haddock Pizza", Category: "pizza", Price: 11.9, Description: "Thin crust, tomato, mozzarella and flaked haddock."},
	{Name: "Margherita", Category: "pizza", Price: 10.99, Description: "Tomato sauce, mozzarella and basil."},
	{Name: "Pepperoni", Category: "pizza", Price: 12.99, Description: "Tomato sauce, mozzarella and pepperoni."},
	{Name: "Iced Lemon Tea", Category: "drinks", Price: 3.2, Description: "Black tea, lemon and mint over ice."},
	{Name: "Chocolate Lava Cake", Category: "offered", Price: 6.5, Description: "Warm chocolate cake with a molten centre."},
}

var sampleReviews = []models.Review{
	{Name: "Jane Doe", Details: "The haddock pizza was the best I have had in years. Friendly staff too.", Rating: 5},
	{Name: "Rafi Ahmed", Details: "Great soup, the duck was a little dry.", Rating: 4},
	{Name: "Lucas Moreau", Details: "Quick delivery and everything arrived hot.", Rating: 4.5},
}

// seedDatabase seeds the store with the sample menu and reviews unless a
// menu already exists
func seedDatabase(ctx context.Context, s store.Store) error {
	count, err := s.CountMenu(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.WithField("menu_items", count).Info("Database already seeded with initial data")
		return nil
	}

	log.Info("Seeding database with initial data")
	for i := range sampleMenu {
		item := sampleMenu[i]
		if _, err := s.InsertMenuItem(ctx, &item); err != nil {
			return fmt.Errorf("seed menu item %q: %w", item.Name, err)
		}
	}
	for i := range sampleReviews {
		review := sampleReviews[i]
		if _, err := s.InsertReview(ctx, &review); err != nil {
			return fmt.Errorf("seed review by %q: %w", review.Name, err)
		}
	}
	log.WithFields(log.Fields{
		"menu_items": len(sampleMenu),
		"reviews":    len(sampleReviews),
	}).Info("Database seeded successfully")
	return nil
}
