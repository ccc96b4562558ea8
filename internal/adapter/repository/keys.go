package repository

import "taruvae/internal/domain/repository"

// Database paths and mirror keys. These are read and written by other
// storefront clients too, so they must not drift.
const (
	pathProducts   = "products"
	pathCategories = "categories"
	pathOrders     = "orders"
	pathBlogs      = "blogs"
	pathReviews    = "reviews"
	pathAddresses  = "addresses"
	pathUsers      = "users"

	keyProducts   = "taruvae-admin-products"
	keyCategories = "taruvae-admin-categories"
	keyOrders     = "taruvae-orders"
	keyBlogs      = "taruvae-blog-posts"
	keyReviews    = "taruvae-reviews"
	keyAddresses  = "taruvae-guest-addresses"
	keyUsers      = "taruvae-users"
)

func writeResult(remote bool, message string) repository.WriteResult {
	return repository.WriteResult{Remote: remote, Message: message}
}
