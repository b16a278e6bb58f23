// Package mask redacts sensitive values before they are logged or rendered:
// email addresses, phone numbers, card numbers and generic secrets.
//
//	masked, err := mask.Email("john@example.com") // "j***@example.com"
//	mask.Phone("5551234567")                      // "******4567"
//	mask.CreditCard("4111 1111 1111 1111")        // "************1111"
//	mask.String("supersecretvalue", 2)            // "su************ue"
//
// Email is the only masker that can fail; everything else accepts arbitrary
// input and degrades to full masking.
package mask
