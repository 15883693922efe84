/*Package tellosdk provides a small, standalone client for the text-based Tello SDK command protocol.

Disclaimer

Tello is a registered trademark of Ryze Tech.  The author(s) of this package is/are in no way affiliated with Ryze, DJI, or Intel.

Use this package at your own risk.  The author(s) is/are in no way responsible for any damage caused either to or by the
drone when using this software.

Features

  * SDK mode entry, takeoff and landing, eg. EnterCommandMode(), TakeOff()
  * Relative movement and rotation, eg. Forward(), Clockwise()
  * Battery query via Battery()
  * Raw commands via Send()
  * A pre-flight battery check and a simple scripted flight runner

Concepts

Command Connection

Every command is a short ASCII string sent in one UDP datagram to port 8889 of the drone, which answers
with a single datagram: "ok" for a successful action, a number for a query, or some error text.
There are no sequence numbers, so a Tello only ever has one command outstanding: each call sends its command
and blocks until the reply arrives or the read timeout expires.

Errors

Transport failures (including timeouts) are returned as an *IOError; a reply that arrived but was
not the expected one is returned as a *ProtocolError holding both the command and the reply text.
Neither is retried.

Example

	drone, err := tellosdk.OpenDefault()
	if err != nil {
		log.Fatal(err)
	}
	defer drone.Close()
	if _, err := drone.Preflight(15); err != nil {
		log.Fatal(err)
	}
	if err := drone.Fly(tellosdk.DefaultPlan(tellosdk.DefaultSettle)); err != nil {
		log.Fatal(err)
	}
*/
package tellosdk
