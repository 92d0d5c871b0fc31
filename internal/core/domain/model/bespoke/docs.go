// Package bespoke covers the made-to-order side of the shop: the live price estimate shown while a
// customer fills in the bespoke form, the form completion ratio, and the Enquiry that is stored when
// the form is submitted.
//
// An estimate is never binding. A size without a base price (custom, or no size chosen yet) yields
// no estimate at all, which the storefront renders as "contact us for a quote".
package bespoke
