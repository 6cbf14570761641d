/*
DESCRIPTION
  doc.go introduces package rpu.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package rpu implements a bit-exact codec for Dolby Vision RPU extension
// metadata blocks (levels 1-11 and 254) and the CM v2.9 / v4.0 composer
// metadata envelopes that carry them.
//
// Parsing and writing never performs I/O; callers hand over an already
// materialized byte buffer (typically the dm_data payload sliced out of
// an HEVC NAL unit by an external collaborator) and get back either a
// fully-populated DmData or an error. A failed parse never returns a
// partially-populated value.
package rpu
