package store

import "github.com/iov-one/almoner"

// Move references for all storage types into this package
// for shorter names everywhere.

type ReadOnlyKVStore = almoner.ReadOnlyKVStore
type KVStore = almoner.KVStore
type SetDeleter = almoner.SetDeleter
type Batch = almoner.Batch
type CacheableKVStore = almoner.CacheableKVStore
type KVCacheWrap = almoner.KVCacheWrap
type CommitKVStore = almoner.CommitKVStore
type CommitID = almoner.CommitID
