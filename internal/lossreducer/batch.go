package lossreducer

import (
	"fmt"
	"sync"

	"dcgpgo/internal/numeric"
)

// Predictor computes one prediction for one input point, the role
// Expression.Call plays for lossreducer's callers.
type Predictor[T numeric.Value[T]] func(point []T) ([]T, error)

// Batch reduces the loss over an entire dataset, mirroring
// expression.hpp's loss(points, labels, loss_s, parallel). workers == 0 runs
// sequentially; workers > 0 splits the batch into that many equal chunks and
// reduces them concurrently behind a SpinLock, exactly like the tbb
// spin_mutex-guarded accumulation in the original.
func Batch[T numeric.Value[T]](points, labels [][]T, kind Kind, workers int, predict Predictor[T]) (T, error) {
	var zero T
	if len(points) != len(labels) {
		return zero, fmt.Errorf("lossreducer: data size is %d while label size is %d", len(points), len(labels))
	}
	if len(points) == 0 {
		return zero, fmt.Errorf("lossreducer: data size cannot be zero")
	}

	batchSize := len(points)
	if workers <= 0 {
		return sequentialBatch(points, labels, kind, predict)
	}

	if batchSize%workers != 0 {
		return zero, fmt.Errorf("lossreducer: batch size %d cannot be divided into %d parts", batchSize, workers)
	}
	chunk := batchSize / workers

	var (
		lock  SpinLock
		total T
		wg    sync.WaitGroup
		errs  = make([]error, workers)
	)

	first := true
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			start := w * chunk
			localSum, err := sumLoss(points[start:start+chunk], labels[start:start+chunk], kind, predict)
			if err != nil {
				errs[w] = err
				return
			}
			lock.Lock()
			if first {
				total = localSum
				first = false
			} else {
				total = total.Add(localSum)
			}
			lock.Unlock()
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return zero, err
		}
	}

	count := total.Zero()
	one := total.One()
	for i := 0; i < batchSize; i++ {
		count = count.Add(one)
	}
	return total.Div(count), nil
}

func sequentialBatch[T numeric.Value[T]](points, labels [][]T, kind Kind, predict Predictor[T]) (T, error) {
	sum, err := sumLoss(points, labels, kind, predict)
	if err != nil {
		var zero T
		return zero, err
	}
	count := sum.Zero()
	one := sum.One()
	for range points {
		count = count.Add(one)
	}
	return sum.Div(count), nil
}

func sumLoss[T numeric.Value[T]](points, labels [][]T, kind Kind, predict Predictor[T]) (T, error) {
	var sum T
	first := true
	for i := range points {
		pred, err := predict(points[i])
		if err != nil {
			var zero T
			return zero, err
		}
		l, err := Point(pred, labels[i], kind)
		if err != nil {
			var zero T
			return zero, err
		}
		if first {
			sum = l
			first = false
		} else {
			sum = sum.Add(l)
		}
	}
	return sum, nil
}
