// Package views maps cart and catalog snapshots to rendering-ready
// structures. Projections are pure: they never mutate model state.
package views

import (
	"html"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"cafeteria-yv/libs"
	"cafeteria-yv/models"
)

// Amounts are whole-unit integers displayed with es-CO grouping (dot
// thousands, no decimals), matching the storefront's single locale.
var amountPrinter = message.NewPrinter(language.Make("es-CO"))

func FormatAmount(n int) string {
	return amountPrinter.Sprintf("%d", n)
}

// EscapeText neutralizes markup in user-supplied names before they reach a
// rendering surface. Product, category, and cart names are attacker-reachable
// text and must never be interpreted as structural markup.
func EscapeText(s string) string {
	return html.EscapeString(s)
}

type CartRow struct {
	Index           int    `json:"index"`
	Name            string `json:"name"`
	QuantityDisplay string `json:"quantity_display"`
	SubtotalDisplay string `json:"subtotal_display"`
}

type CartView struct {
	Rows         []CartRow `json:"rows"`
	TotalDisplay string    `json:"total_display"`
	Count        int       `json:"count"`
	Empty        bool      `json:"empty"`
}

// ProjectCart renders the cart panel: one row per line with formatted quantity
// and subtotal, plus the badge count and formatted total.
func ProjectCart(snap models.CartSnapshot) CartView {
	view := CartView{
		Rows:         make([]CartRow, 0, len(snap.Items)),
		TotalDisplay: "$" + FormatAmount(snap.Total),
		Count:        snap.Count,
		Empty:        len(snap.Items) == 0,
	}
	for i, item := range snap.Items {
		view.Rows = append(view.Rows, CartRow{
			Index:           i,
			Name:            EscapeText(item.Name),
			QuantityDisplay: amountPrinter.Sprintf("x%d", item.Quantity),
			SubtotalDisplay: "$" + FormatAmount(item.Subtotal),
		})
	}
	return view
}

// Delivery sizes for the two rendered surfaces. Blank refs resolve to the
// placeholder inside BuildImageURL.
var (
	menuCardImage  = libs.ImageOptions{Width: 400, Height: 300}
	adminThumbnail = libs.ImageOptions{Width: 100, Height: 100}
)

type MenuCard struct {
	Index        int    `json:"index"`
	Name         string `json:"name"`
	PriceDisplay string `json:"price_display"`
	Category     string `json:"category"`
	ImageURL     string `json:"image_url"`
	HasAddButton bool   `json:"has_add_button"`
}

// ProjectMenu renders the public product listing in catalog order.
func ProjectMenu(snap models.CatalogSnapshot) []MenuCard {
	cards := make([]MenuCard, 0, len(snap.Products))
	for i, p := range snap.Products {
		cards = append(cards, MenuCard{
			Index:        i,
			Name:         EscapeText(p.Name),
			PriceDisplay: "$" + FormatAmount(p.Price),
			Category:     EscapeText(p.Category),
			ImageURL:     libs.BuildImageURL(p.ImageRef, menuCardImage),
			HasAddButton: true,
		})
	}
	return cards
}

// AdminProductRow keeps the raw image reference alongside the resolved
// thumbnail URL so the edit form can round-trip the stored value.
type AdminProductRow struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Price        int    `json:"price"`
	PriceDisplay string `json:"price_display"`
	Category     string `json:"category"`
	ImageRef     string `json:"image_ref"`
	ImageURL     string `json:"image_url"`
}

type CategoryItem struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Deletable bool   `json:"deletable"`
}

type AdminView struct {
	Products   []AdminProductRow `json:"products"`
	Categories []CategoryItem    `json:"categories"`
}

// ProjectAdmin renders the admin tables. Index 0 of the category list is
// marked non-deletable.
func ProjectAdmin(snap models.CatalogSnapshot) AdminView {
	view := AdminView{
		Products:   make([]AdminProductRow, 0, len(snap.Products)),
		Categories: make([]CategoryItem, 0, len(snap.Categories)),
	}
	for _, p := range snap.Products {
		view.Products = append(view.Products, AdminProductRow{
			ID:           p.ID,
			Name:         EscapeText(p.Name),
			Price:        p.Price,
			PriceDisplay: "$" + FormatAmount(p.Price),
			Category:     EscapeText(p.Category),
			ImageRef:     p.ImageRef,
			ImageURL:     libs.BuildImageURL(p.ImageRef, adminThumbnail),
		})
	}
	for i, name := range snap.Categories {
		view.Categories = append(view.Categories, CategoryItem{
			Index:     i,
			Name:      EscapeText(name),
			Deletable: i != 0,
		})
	}
	return view
}

type Report struct {
	CartCount    int        `json:"cart_count"`
	TotalDisplay string     `json:"total_display"`
	MenuCount    int        `json:"menu_count"`
	CartRows     []CartRow  `json:"cart_rows"`
	Menu         []MenuCard `json:"menu"`
}

// ProjectReport renders the consolidated dashboard: summary cards plus the
// cart table and the full menu listing.
func ProjectReport(cartSnap models.CartSnapshot, menuSnap models.CatalogSnapshot) Report {
	cartView := ProjectCart(cartSnap)
	menu := ProjectMenu(menuSnap)
	return Report{
		CartCount:    cartSnap.Count,
		TotalDisplay: cartView.TotalDisplay,
		MenuCount:    len(menu),
		CartRows:     cartView.Rows,
		Menu:         menu,
	}
}
