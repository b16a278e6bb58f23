// Package slug generates URL-safe slugs from arbitrary strings.
//
// Input is cleaned first (HTML entities decoded, tags and emoji stripped,
// Unicode decomposed, whitespace normalized), then lowercased and reduced to
// ASCII letters, digits and separators:
//
//	slug.Make("  <p>Hello, World! (2024)</p>  ")
//	// "hello-world-2024"
//
//	slug.Make("Café & Restaurant")
//	// "cafe-restaurant"
//
// Accented Latin letters survive through their ASCII base letter; characters
// from non-Latin scripts have no ASCII base and are dropped entirely.
//
// Options:
//
//	slug.Make("Product Name", slug.Separator("_"))          // "product_name"
//	slug.Make("A very long title here", slug.MaxLength(12)) // "a-very-long"
//	slug.Make("Fish & Chips", slug.CustomReplace(map[string]string{"&": "and"}))
//	// "fish-and-chips"
package slug
