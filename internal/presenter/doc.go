package presenter

// Package presenter holds the discovery postcard component: it turns a
// configured project plus user interaction events into the display strings,
// images, visibility flags, and colors the card view renders, and raises the
// host notifications (share, login prompt, save alert). The hosting view
// subscribes to the output signals, then feeds inputs through the methods.
