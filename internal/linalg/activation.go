package linalg

// Softmax normalizes z into a probability distribution.
//
// max(z) is subtracted before exponentiating so realistic logit ranges cannot
// overflow; for finite z every output is strictly positive and the outputs
// sum to 1.
func Softmax[T Float](z *Vector[T]) *Vector[T] {
	out := Zeros[T](z.Len())
	if z.Len() == 0 {
		return out
	}
	k := kernelsFor[T]()
	shift := Max(z)
	var sum T
	for i, x := range z.data {
		e := k.exp(x - shift)
		out.data[i] = e
		sum += e
	}
	k.scal(1/sum, out.data)
	return out
}

// ReLU returns max(0, z[i]) element-wise.
func ReLU[T Float](z *Vector[T]) *Vector[T] {
	out := Zeros[T](z.Len())
	for i, x := range z.data {
		if x > 0 {
			out.data[i] = x
		}
	}
	return out
}

// ReLUPrime returns 1 where z[i] > 0 and 0 elsewhere, including at exactly 0.
func ReLUPrime[T Float](z *Vector[T]) *Vector[T] {
	out := Zeros[T](z.Len())
	for i, x := range z.data {
		if x > 0 {
			out.data[i] = 1
		}
	}
	return out
}

// Log returns the natural logarithm of x in T's precision.
func Log[T Float](x T) T {
	return kernelsFor[T]().log(x)
}
