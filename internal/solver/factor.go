package solver

// factorize returns the prime factors of n with multiplicity, in ascending
// order: trial division by 2, then by odd candidates up to sqrt of the
// remaining cofactor. A cofactor > 1 left at the end is itself prime and
// is appended. factorize(1) returns an empty multiset.
func factorize(n int64) []int64 {
	var factors []int64

	for n%2 == 0 {
		factors = append(factors, 2)
		n /= 2
	}

	for i := int64(3); i*i <= n; i += 2 {
		for n%i == 0 {
			factors = append(factors, i)
			n /= i
		}
	}

	if n > 2 {
		factors = append(factors, n)
	}

	return factors
}

// largestFactor returns the largest divisor of product that is <= limit.
// A product already within the limit is its own largest divisor; otherwise
// the result is at least 1, since 1 divides everything.
//
// The search walks the prime-factor multiset of product depth first: at
// each step it either divides the current distinct factor out of the
// intermediate product or skips all of its occurrences. Intermediate
// products already visited are pruned through the seen set, which is owned
// by this call and threaded through the recursion.
func largestFactor(product, limit int64) int64 {
	if product <= limit {
		return product
	}
	seen := make(map[int64]struct{})
	return splitRec(seen, product, limit, factorize(product), 0)
}

// splitRec explores divisors of product reachable by dividing out factors
// at positions >= index, returning the largest one <= limit found.
//
// When dividing out the current factor lands inside the limit and improves
// on the best so far, the scan stops early: any further division only
// shrinks the intermediate, so nothing larger can follow on this branch.
func splitRec(seen map[int64]struct{}, product, limit int64, factors []int64, index int) int64 {
	best := int64(1)

	if _, visited := seen[product]; visited {
		return best
	}
	seen[product] = struct{}{}

	for index < len(factors) {
		current := factors[index]
		res := product / current

		if res <= limit && res > best {
			best = res
			break
		}

		if index+1 < len(factors) {
			if rr := splitRec(seen, res, limit, factors, index+1); rr > best {
				best = rr
			}
		}

		// Skip the remaining occurrences of the current factor; retrying
		// it would revisit the same intermediate products.
		for index++; index < len(factors) && factors[index] == current; index++ {
		}
	}

	return best
}
