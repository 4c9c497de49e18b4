package memory

import "context"

type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

// RunInTx serializes transactional work; each repository call still takes
// the data lock itself.
func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.store.txMu.Lock()
	defer t.store.txMu.Unlock()
	return fn(ctx)
}
