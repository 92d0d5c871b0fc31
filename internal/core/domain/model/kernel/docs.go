// Package kernel holds the value objects shared by every wreaths aggregate.
//
//   - UUID identifies orders, order lines and bespoke enquiries.
//   - Money is a non-negative amount with two decimal places, used for item prices,
//     order totals and bespoke estimates.
//
// Both are immutable and have an invalid zero value, so a forgotten constructor call
// surfaces as a Validate error instead of a silent nil ID or free wreath.
package kernel
