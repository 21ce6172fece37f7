package shell

const invertingDiagram = `
               *----| RF |----*
               |              |
               |   |\         |
  Vin--| RI |--*---|-\        |
                   |  \_______*____Vout
                   |  /
               *---|+/
               |   |/
             -----
              ---
`

const nonInvertingDiagram = `
                   |\
  Vin--------------|+\
                   |  \_____*____Vout
                   |  /     |
             *-----|-/    |----|
             |     |/     | RF |
             |            |----|
             |              |
             *--------------*
                            |
                          |----|
                          | RG |
                          |----|
                            |
                          -----
                           ---
`

const lowPassDiagram = `
          +----- R ---------------o V_out
          ^                |      ^
    V_in  |                C      |
          |                |      |
          +-----------------------o
`

const highPassDiagram = `
          +----- C ---------------o V_out
          ^                |      ^
    V_in  |                R      |
          |                |      |
          +-----------------------o
`

const sallenKeyDiagram = `
                      |----|
             *--------| Z3 |-----------------------*
             |        |----|                       |
             |                        |\           |
             |                        |+\          |
   |----|    |    |----|              |  \_________*_____ Vout
 --| Z1 |----*----| Z2 |----*---------|  /         |
   |----|         |----|    |      *--|-/        |----|
                            |      |  |/         | RA |
                          |----|   |             |----|
                          | Z4 |   *---------------*
                          |----|                   |
                            |                    |----|
                          -----                  | RB |
                           ---                   |----|
                                                   |
                                                 -----
                                                  ---
`
