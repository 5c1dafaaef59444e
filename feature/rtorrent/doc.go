// Package rtorrent implements a torrent source backed by rTorrent's XML-RPC interface.
//
// Torrents are listed with one d.multicall2 over the "main" view and removed
// with d.erase, which drops the torrent from the client without touching its
// data. Ratios arrive in per-mille and are scaled to a plain ratio; a finished
// timestamp of zero marks an unfinished torrent.
package rtorrent
