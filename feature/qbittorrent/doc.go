// Package qbittorrent implements a torrent source backed by the qBittorrent Web API.
//
// The torrent category plays the role of rTorrent's label, and a completion
// time of zero or below marks an unfinished torrent. Single-file releases are
// joined on their name with the video extension removed.
package qbittorrent
