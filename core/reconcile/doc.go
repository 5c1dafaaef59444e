// Package reconcile selects local media files that are safe to delete by
// reconciling two inventories of the same library: the download client
// (torrents with completion timestamps) and the media manager (movies with
// on-disk paths and sizes).
//
// # Architecture
//
// The package consists of four pieces:
//
// 1. Sources: TorrentSource and MediaSource interfaces implemented under
//    feature/ (rtorrent, qbittorrent, radarr). Both are injected, so tests
//    substitute the testify mocks in reconcile/mocks.
//
// 2. Snapshot: both inventories fetched once per pass. The two queries run
//    concurrently and the join only starts after both complete. A failure in
//    either aborts the pass with ErrSourceUnavailable.
//
// 3. Reconciler: joins the snapshot by identifying name (the release name)
//    using one of three strategies:
//   - ModeTorrent: finished torrents older than the threshold whose name has
//     a media entry.
//   - ModeMedia: media entries whose torrent no longer exists in the client.
//   - ModeCombined: both, concatenated without deduplication.
//
// 4. Executor: removes the torrent behind each torrent-backed candidate,
//    or only records it when running dry. Media-only candidates are reported
//    as unhandled; deleting their files is left to the caller.
//
// # Retention
//
// Retention.Match is a pure, total predicate. A torrent matches when it has
// finished, carries the configured label, and its age in whole days is
// strictly greater than the threshold (strictly less when inverted).
//
// # Usage Example
//
//	r := reconcile.NewReconciler(rtorrentSource, radarrSource)
//	candidates, err := r.FindDeletable(ctx, 30, reconcile.ModeCombined)
//	if errors.Is(err, reconcile.ErrSourceUnavailable) {
//	    // retry the whole run later
//	}
//
//	result := reconcile.NewExecutor(rtorrentSource).Apply(ctx, candidates, true)
//	fmt.Println(result.Removed)
package reconcile
